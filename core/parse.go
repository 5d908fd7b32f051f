package core

import "errors"

// ErrDanglingRedirect is the error resulting if a redirection operator is
// the last token on a line.
var ErrDanglingRedirect = errors.New("syntax error: redirection without a target")

// RedirectOp names the direction of an I/O redirection.
type RedirectOp int

const (
	RedirNone RedirectOp = iota
	// RedirIn binds the child's standard input to a file opened read-only.
	RedirIn
	// RedirOut binds the child's standard output to a file that is
	// created or truncated.
	RedirOut
)

// Redirect is a single parsed redirection. The zero value means no
// redirection.
type Redirect struct {
	Op     RedirectOp
	Target string
}

// SplitRedirect separates the positional arguments of a command from its
// redirection. The first "<" or ">" token ends the argument scan and the
// token that follows it names the target file; anything after the target is
// ignored. At most one redirection is recognized per command.
func SplitRedirect(tokens []string) ([]string, Redirect, error) {
	for i, tok := range tokens {
		var op RedirectOp
		switch tok {
		case "<":
			op = RedirIn
		case ">":
			op = RedirOut
		default:
			continue
		}

		if i+1 >= len(tokens) {
			return nil, Redirect{}, ErrDanglingRedirect
		}
		return tokens[:i:i], Redirect{Op: op, Target: tokens[i+1]}, nil
	}

	return tokens, Redirect{}, nil
}
