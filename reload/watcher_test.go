package reload

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "triangle.vert")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(vert, []byte("#version 450 core\n"), 0o644))

	var woken atomic.Int32
	w, err := New([]string{vert}, func() { woken.Add(1) })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(vert, []byte("#version 450 core\nvoid main(){}\n"), 0o644))

	// wake runs after the change is queued
	require.Eventually(t, func() bool { return woken.Load() > 0 }, 5*time.Second, 10*time.Millisecond)
	assert.True(t, w.Drain())
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "triangle.vert")
	require.NoError(t, os.WriteFile(vert, nil, 0o644))

	var woken atomic.Int32
	w, err := New([]string{vert}, func() { woken.Add(1) })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, woken.Load())
	assert.False(t, w.Drain())
}

func TestDrain(t *testing.T) {
	w := &Watcher{changed: make(chan string, 4)}
	assert.False(t, w.Drain())
	w.changed <- "a"
	w.changed <- "b"
	assert.True(t, w.Drain())
	assert.False(t, w.Drain())
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "nope", "x.frag")}, nil)
	assert.Error(t, err)
}
