package core

import (
	"errors"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is the error resulting if a path search failed to find an
// executable file.
var ErrNotFound = exec.ErrNotFound

// ErrNoSearchPath is the error resulting if neither the PATH environment
// variable nor the configured fallback provide any directories to search.
var ErrNoSearchPath = errors.New("search path is not set")

// Resolver locates external commands by scanning the search path.
//
// Lookups test only that the file exists; whether it can actually be
// executed is discovered at spawn time.
type Resolver struct {
	fs       afero.Fs
	getenv   func(string) string
	fallback string
}

func NewResolver(fs afero.Fs, getenv func(string) string, fallback string) *Resolver {
	return &Resolver{fs: fs, getenv: getenv, fallback: fallback}
}

// SearchPath returns the directories to search, in order. The environment
// is consulted fresh on every call so changes made by a parent process or
// a child are picked up immediately.
func (r *Resolver) SearchPath() []string {
	path := r.getenv(EnvPath)
	if path == "" {
		path = r.fallback
	}
	if path == "" {
		return nil
	}
	return filepath.SplitList(path)
}

func (r *Resolver) exists(file string) error {
	_, err := r.fs.Stat(file)
	return err
}

// Resolve searches for a command named file in the directories named by the
// PATH environment variable and returns the first match. If file contains a
// slash, it is tried directly and the PATH is not consulted.
func (r *Resolver) Resolve(file string) (string, error) {
	if strings.Contains(file, "/") {
		if err := r.exists(file); err == nil {
			return file, nil
		}
		return "", ErrNotFound
	}

	dirs := r.SearchPath()
	if len(dirs) == 0 {
		return "", ErrNoSearchPath
	}

	for _, dir := range dirs {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := r.exists(path); err == nil {
			return path, nil
		}
	}
	return "", ErrNotFound
}
