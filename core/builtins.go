package core

import (
	"fmt"
	"os"

	"github.com/pborman/getopt/v2"
)

// BuiltinFunc runs a builtin with the full token sequence of the line,
// including the builtin's own name at index 0, and returns its status
// code.
type BuiltinFunc func(s *Shell, args []string) int

// Builtin is one entry in the shell's builtin table.
type Builtin struct {
	Name string
	Doc  string
	Main BuiltinFunc
}

// AllBuiltins is the fixed table of commands that run inside the shell
// process. It is never mutated after startup.
var AllBuiltins []Builtin

func init() {
	AllBuiltins = []Builtin{
		{"pwd", "print the working directory", builtinPwd},
		{"cd", "change the working directory", builtinCd},
		{"history", "show or clear the command history", builtinHistory},
		{"help", "show this help menu", builtinHelp},
		{"exit", "exit the shell", builtinExit},
	}
}

// LookupBuiltin finds the builtin with exactly the given name. It reports
// false for an empty name so blank lines fall through to the caller.
func LookupBuiltin(name string) (*Builtin, bool) {
	for i := range AllBuiltins {
		if AllBuiltins[i].Name == name {
			return &AllBuiltins[i], true
		}
	}
	return nil, false
}

func builtinPwd(s *Shell, args []string) int {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(s.stderr, "%s: %v\n", args[0], err)
		return 1
	}
	fmt.Fprintln(s.stdout, wd)
	return 0
}

func builtinCd(s *Shell, args []string) int {
	switch len(args) {
	case 1:
		args = append(args, os.Getenv(EnvHome))
		fallthrough
	case 2:
		if err := os.Chdir(args[1]); err != nil {
			fmt.Fprintf(s.stderr, "%s: %v\n", args[0], err)
			return 1
		}
	default:
		fmt.Fprintf(s.stderr, "%s: too many arguments\n", args[0])
		return 1
	}
	return 0
}

func builtinHistory(s *Shell, args []string) int {
	opts := getopt.New()
	clear := opts.Bool('c', "clear the history by deleting all entries")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		w := s.stderr
		if err != nil {
			fmt.Fprintln(w, err)
		}
		fmt.Fprintln(w, "Display or manipulate the history list.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		opts.PrintOptions(w)
		if err != nil {
			return 1
		}
		return 0
	}

	if *clear {
		s.history = nil
		return 0
	}

	for i, line := range s.history {
		fmt.Fprintf(s.stdout, "% 5d  %s\n", i, line)
	}
	return 0
}

func builtinHelp(s *Shell, args []string) int {
	for _, b := range AllBuiltins {
		fmt.Fprintf(s.stdout, "%s - %s\n", b.Name, b.Doc)
	}
	return 0
}

func builtinExit(s *Shell, args []string) int {
	s.quit = true
	return 0
}
