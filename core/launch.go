//go:build !windows

package core

import (
	"os"
	"syscall"
)

func (r Redirect) open() (*os.File, error) {
	switch r.Op {
	case RedirIn:
		return os.Open(r.Target)
	case RedirOut:
		return os.OpenFile(r.Target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	default:
		return nil, nil
	}
}

// Launch runs the program at path to completion and returns its exit
// status. The child inherits the shell's standard streams except for the
// one replaced by redir; the redirect file is opened before the fork and
// closed in the parent right after it, so the shell's own descriptor table
// is unchanged across the launch.
//
// An error covers both failure to create the child and failure to replace
// its program image, which the runtime reports back through a pipe before
// the child is abandoned.
func Launch(path string, argv []string, redir Redirect) (int, error) {
	files := []uintptr{os.Stdin.Fd(), os.Stdout.Fd(), os.Stderr.Fd()}

	if redir.Op != RedirNone {
		fd, err := redir.open()
		if err != nil {
			return 0, err
		}
		defer fd.Close()

		if redir.Op == RedirIn {
			files[0] = fd.Fd()
		} else {
			files[1] = fd.Fd()
		}
	}

	pid, err := syscall.ForkExec(path, argv, &syscall.ProcAttr{
		Env:   os.Environ(),
		Files: files,
	})
	if err != nil {
		return 0, err
	}

	var status syscall.WaitStatus
	for {
		_, err := syscall.Wait4(pid, &status, 0, nil)
		if err == syscall.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		break
	}

	return status.ExitStatus(), nil
}
