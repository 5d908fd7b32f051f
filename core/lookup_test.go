package core

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(env map[string]string) func(string) string {
	return func(key string) string { return env[key] }
}

func newLookupFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte("#!/bin/sh\n"), 0755))
	}
	return fs
}

func TestResolveFirstMatchWins(t *testing.T) {
	fs := newLookupFs(t, "/bin/cat", "/usr/bin/cat")
	r := NewResolver(fs, fakeEnv(map[string]string{EnvPath: "/bin:/usr/bin"}), "")

	path, err := r.Resolve("cat")

	assert.NoError(t, err)
	assert.Equal(t, "/bin/cat", path)
}

func TestResolveScansDirectoriesInOrder(t *testing.T) {
	fs := newLookupFs(t, "/usr/bin/ls")
	r := NewResolver(fs, fakeEnv(map[string]string{EnvPath: "/bin:/usr/bin"}), "")

	path, err := r.Resolve("ls")

	assert.NoError(t, err)
	assert.Equal(t, "/usr/bin/ls", path)
}

func TestResolveNotFound(t *testing.T) {
	fs := newLookupFs(t, "/bin/cat")
	r := NewResolver(fs, fakeEnv(map[string]string{EnvPath: "/bin"}), "")

	_, err := r.Resolve("nonexistentcmd123")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveUnsetPath(t *testing.T) {
	fs := newLookupFs(t, "/bin/cat")
	r := NewResolver(fs, fakeEnv(nil), "")

	_, err := r.Resolve("cat")

	assert.ErrorIs(t, err, ErrNoSearchPath)
}

func TestResolveFallbackPath(t *testing.T) {
	fs := newLookupFs(t, "/bin/cat")
	r := NewResolver(fs, fakeEnv(nil), "/bin")

	path, err := r.Resolve("cat")

	assert.NoError(t, err)
	assert.Equal(t, "/bin/cat", path)
}

func TestResolveSlashBypassesSearchPath(t *testing.T) {
	fs := newLookupFs(t, "/opt/tool")
	r := NewResolver(fs, fakeEnv(nil), "")

	path, err := r.Resolve("/opt/tool")
	assert.NoError(t, err)
	assert.Equal(t, "/opt/tool", path)

	_, err = r.Resolve("/opt/missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveEmptyPathElementMeansDot(t *testing.T) {
	fs := newLookupFs(t, "local-tool")
	r := NewResolver(fs, fakeEnv(map[string]string{EnvPath: ":/bin"}), "")

	path, err := r.Resolve("local-tool")

	assert.NoError(t, err)
	assert.Equal(t, "local-tool", path)
}

func TestResolveConsultsEnvironmentFresh(t *testing.T) {
	fs := newLookupFs(t, "/bin/cat", "/usr/bin/cat")
	env := map[string]string{EnvPath: "/bin"}
	r := NewResolver(fs, fakeEnv(env), "")

	path, err := r.Resolve("cat")
	assert.NoError(t, err)
	assert.Equal(t, "/bin/cat", path)

	env[EnvPath] = "/usr/bin"

	path, err = r.Resolve("cat")
	assert.NoError(t, err)
	assert.Equal(t, "/usr/bin/cat", path)
}
