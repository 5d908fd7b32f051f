//go:build !windows

package core

import (
	"fmt"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// TermState records whether the shell is attached to a terminal and, if
// so, which process group owns it and what modes to restore at exit. It is
// built once at startup and passed around explicitly.
type TermState struct {
	// Interactive is whether the shell's input is a terminal device.
	Interactive bool
	// TTY is the descriptor the terminal ioctls operate on.
	TTY int
	// ProcessGroup is the foreground process group claimed by the shell.
	ProcessGroup int

	saved *unix.Termios
}

// AcquireTerminal determines whether fd is a terminal and, if it is, waits
// until the shell's process group is in the foreground, claims the
// terminal for it and saves the terminal modes for later restoration.
//
// If the shell is not in the foreground it stops its own process group
// with SIGTTIN; the parent job-control shell delivers SIGCONT when it
// brings us forward.
func AcquireTerminal(fd int) (*TermState, error) {
	state := &TermState{
		TTY:         fd,
		Interactive: isatty.IsTerminal(uintptr(fd)),
	}
	if !state.Interactive {
		return state, nil
	}

	for {
		foreground, err := unix.IoctlGetInt(fd, unix.TIOCGPGRP)
		if err != nil {
			return nil, fmt.Errorf("reading foreground process group: %w", err)
		}
		pgrp := unix.Getpgrp()
		if foreground == pgrp {
			break
		}
		if err := unix.Kill(-pgrp, unix.SIGTTIN); err != nil {
			return nil, fmt.Errorf("stopping process group %d: %w", pgrp, err)
		}
	}

	state.ProcessGroup = unix.Getpid()
	if err := unix.IoctlSetPointerInt(fd, unix.TIOCSPGRP, state.ProcessGroup); err != nil {
		return nil, fmt.Errorf("claiming terminal: %w", err)
	}

	saved, err := unix.IoctlGetTermios(fd, reqGetTermios)
	if err != nil {
		return nil, fmt.Errorf("saving terminal modes: %w", err)
	}
	state.saved = saved

	return state, nil
}

// RestoreModes puts the terminal back into the mode it had when the shell
// acquired it. It is a no-op for non-interactive shells.
func (t *TermState) RestoreModes() error {
	if !t.Interactive || t.saved == nil {
		return nil
	}
	return unix.IoctlSetTermios(t.TTY, reqSetTermios, t.saved)
}
