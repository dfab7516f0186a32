package gitsync

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chisom-ui/chisom/internal/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
	require.NoError(t, err)
	return log
}

func initUpstream(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "registry.json"), []byte(`{"version":"1.0","components":[]}`), 0o644))
	_, err = wt.Add("registry.json")
	require.NoError(t, err)

	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Chisom",
			Email: "chisom@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}

func commitChange(t *testing.T, dir string) {
	t.Helper()

	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "registry.json"), []byte(`{"version":"1.1","components":[]}`), 0o644))
	_, err = wt.Add("registry.json")
	require.NoError(t, err)

	_, err = wt.Commit("update registry", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Chisom",
			Email: "chisom@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
}

func TestSyncClonesFreshCheckout(t *testing.T) {
	upstream := initUpstream(t)
	dest := filepath.Join(t.TempDir(), "registry")

	result, err := Sync(context.Background(), Options{URL: upstream, Dir: dest}, testLogger(t))
	require.NoError(t, err)

	assert.True(t, result.Cloned)
	assert.NotEmpty(t, result.Head)

	_, err = os.Stat(RegistryFile(dest))
	require.NoError(t, err)
}

func TestSyncExistingCheckoutUpToDate(t *testing.T) {
	upstream := initUpstream(t)
	dest := filepath.Join(t.TempDir(), "registry")

	_, err := Sync(context.Background(), Options{URL: upstream, Dir: dest}, testLogger(t))
	require.NoError(t, err)

	result, err := Sync(context.Background(), Options{URL: upstream, Dir: dest}, testLogger(t))
	require.NoError(t, err)

	assert.False(t, result.Cloned)
	assert.True(t, result.UpToDate)
}

func TestSyncFastForwardsExistingCheckout(t *testing.T) {
	upstream := initUpstream(t)
	dest := filepath.Join(t.TempDir(), "registry")

	first, err := Sync(context.Background(), Options{URL: upstream, Dir: dest}, testLogger(t))
	require.NoError(t, err)

	commitChange(t, upstream)

	second, err := Sync(context.Background(), Options{URL: upstream, Dir: dest}, testLogger(t))
	require.NoError(t, err)

	assert.False(t, second.UpToDate)
	assert.NotEqual(t, first.Head, second.Head)
}

func TestSyncReplacesNonGitDirectory(t *testing.T) {
	upstream := initUpstream(t)
	dest := filepath.Join(t.TempDir(), "registry")

	require.NoError(t, os.MkdirAll(dest, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "stale.txt"), []byte("stale"), 0o644))

	result, err := Sync(context.Background(), Options{URL: upstream, Dir: dest}, testLogger(t))
	require.NoError(t, err)
	assert.True(t, result.Cloned)

	_, err = os.Stat(filepath.Join(dest, "stale.txt"))
	require.Error(t, err)
}

func TestSyncRequiresURL(t *testing.T) {
	_, err := Sync(context.Background(), Options{Dir: t.TempDir()}, testLogger(t))
	require.Error(t, err)
}
