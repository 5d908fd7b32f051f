package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRedirect(t *testing.T) {
	cases := []struct {
		name   string
		tokens []string
		argv   []string
		redir  Redirect
	}{
		{
			name:   "no redirection",
			tokens: []string{"ls", "-l", "/tmp"},
			argv:   []string{"ls", "-l", "/tmp"},
			redir:  Redirect{},
		},
		{
			name:   "output redirection",
			tokens: []string{"echo", "hi", ">", "out.txt"},
			argv:   []string{"echo", "hi"},
			redir:  Redirect{Op: RedirOut, Target: "out.txt"},
		},
		{
			name:   "input redirection",
			tokens: []string{"wc", "-l", "<", "in.txt"},
			argv:   []string{"wc", "-l"},
			redir:  Redirect{Op: RedirIn, Target: "in.txt"},
		},
		{
			name:   "tokens after the target are ignored",
			tokens: []string{"sort", "<", "in.txt", "ignored", ">"},
			argv:   []string{"sort"},
			redir:  Redirect{Op: RedirIn, Target: "in.txt"},
		},
		{
			name:   "empty sequence",
			tokens: nil,
			argv:   nil,
			redir:  Redirect{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			argv, redir, err := SplitRedirect(tc.tokens)

			assert.NoError(t, err)
			assert.Equal(t, tc.argv, argv)
			assert.Equal(t, tc.redir, redir)
		})
	}
}

func TestSplitRedirectDanglingOperator(t *testing.T) {
	for _, op := range []string{"<", ">"} {
		t.Run(op, func(t *testing.T) {
			_, _, err := SplitRedirect([]string{"cat", op})

			assert.ErrorIs(t, err, ErrDanglingRedirect)
		})
	}
}
