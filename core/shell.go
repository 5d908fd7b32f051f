package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/anmitsu/go-shlex"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"tinysh/core/config"
	"tinysh/core/logger"
)

const (
	EnvHome = "HOME"
	EnvPath = "PATH"
)

var (
	errColor  = color.New(color.FgRed)
	motdColor = color.New(color.FgCyan, color.Bold)
)

// lineSource is the line-reading front end of the shell.
type lineSource interface {
	SetPrompt(prompt string)
	Readline() (string, error)
	Close() error
}

var _ lineSource = (*readline.Instance)(nil)

// Shell owns all per-session state: terminal control, command resolution,
// history and the audit log. There are no package-level mutable globals;
// everything is reachable from here.
type Shell struct {
	cfg      *config.Configuration
	term     *TermState
	resolver *Resolver
	lines    lineSource
	audit    *logger.Logger

	stdout io.Writer
	stderr io.Writer

	history []string
	lineNum int
	quit    bool
}

// NewShell wires a shell to the process's standard streams. Terminal
// acquisition happens here, before any input is read.
func NewShell(configuration *config.Configuration, audit *logger.Logger) (*Shell, error) {
	term, err := AcquireTerminal(int(os.Stdin.Fd()))
	if err != nil {
		return nil, err
	}

	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(os.Stdin),
		Stdout: os.Stdout,
		Stderr: os.Stderr,

		FuncIsTerminal: func() bool {
			return term.Interactive
		},
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	lines, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &Shell{
		cfg:      configuration,
		term:     term,
		resolver: NewResolver(afero.NewOsFs(), os.Getenv, configuration.DefaultPath),
		lines:    lines,
		audit:    audit,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}, nil
}

// Run reads and dispatches lines until end of input or the exit builtin.
// No per-command failure ends the loop.
func (s *Shell) Run() error {
	if s.term.Interactive && s.cfg.Motd != "" {
		motdColor.Fprintln(s.stdout, s.cfg.Motd)
	}

	for !s.quit {
		s.lines.SetPrompt(s.prompt())
		line, err := s.lines.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Drop the partial line and keep reading.

		case err != nil:
			return err

		default:
			s.Dispatch(line)
		}

		s.lineNum++
	}
	return nil
}

// Close releases the line reader and hands the terminal back in the mode
// it was acquired in.
func (s *Shell) Close() error {
	if err := s.lines.Close(); err != nil {
		return err
	}
	return s.term.RestoreModes()
}

// prompt renders the configured prompt template. \# expands to the current
// line number and \w to the working directory. Non-interactive shells
// never show a prompt.
func (s *Shell) prompt() string {
	if !s.term.Interactive {
		return ""
	}

	prompt := s.cfg.Prompt
	if prompt == "" {
		prompt = config.DefaultPrompt
	}
	prompt = strings.ReplaceAll(prompt, `\#`, strconv.Itoa(s.lineNum))
	if strings.Contains(prompt, `\w`) {
		wd, _ := os.Getwd()
		prompt = strings.ReplaceAll(prompt, `\w`, wd)
	}
	return prompt
}

// Dispatch tokenizes one line and runs it, either as a builtin or as an
// external command, returning the command's status code.
func (s *Shell) Dispatch(line string) int {
	tokens, err := shlex.Split(line, true)
	if err != nil {
		s.errorf("syntax error: %v\n", err)
		return 2
	}
	if len(tokens) == 0 {
		return 0
	}

	s.remember(line)

	if builtin, ok := LookupBuiltin(tokens[0]); ok {
		status := builtin.Main(s, tokens)
		s.record(logger.KindBuiltin, tokens[0], tokens, status)
		return status
	}

	return s.runExternal(tokens)
}

func (s *Shell) runExternal(tokens []string) int {
	execPath, err := s.resolver.Resolve(tokens[0])
	switch {
	case err == ErrNotFound:
		s.errorf("%s: command not found\n", tokens[0])
		s.record(logger.KindNotFound, tokens[0], tokens, 127)
		return 127
	case err != nil:
		s.errorf("%s: %v\n", tokens[0], err)
		return 127
	}

	argv, redir, err := SplitRedirect(tokens)
	if err == nil && len(argv) == 0 {
		err = ErrDanglingRedirect
	}
	if err != nil {
		s.errorf("%s: %v\n", tokens[0], err)
		return 2
	}

	// By convention argv[0] is the base name of the resolved program,
	// not the name the user typed.
	argv = append([]string{filepath.Base(execPath)}, argv[1:]...)

	status, err := Launch(execPath, argv, redir)
	if err != nil {
		s.errorf("%s: %v\n", tokens[0], err)
		s.record(logger.KindExec, execPath, tokens, 126)
		return 126
	}

	s.record(logger.KindExec, execPath, tokens, status)
	return status
}

// remember appends the line to the history, trimming the oldest entries
// when the configured limit is exceeded.
func (s *Shell) remember(line string) {
	s.history = append(s.history, line)
	if limit := s.cfg.HistoryLimit; limit > 0 && len(s.history) > limit {
		s.history = s.history[len(s.history)-limit:]
	}
}

func (s *Shell) record(kind logger.EventKind, path string, argv []string, status int) {
	if err := s.audit.Command(kind, path, argv, status); err != nil {
		log.Printf("audit: %v", err)
	}
}

func (s *Shell) errorf(format string, args ...interface{}) {
	if s.term.Interactive {
		errColor.Fprintf(s.stderr, format, args...)
		return
	}
	fmt.Fprintf(s.stderr, format, args...)
}
