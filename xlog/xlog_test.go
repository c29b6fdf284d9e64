package xlog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborists/xregions/xlog"
)

func TestNew_DefaultWritesToStderrOnly(t *testing.T) {
	l, err := xlog.New(xlog.Config{Level: xlog.LevelInfo})
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.NoError(t, l.Close())
}

func TestNew_FileSinkIsCreated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.log")

	l, err := xlog.New(xlog.Config{Level: xlog.LevelDebug, File: path})
	require.NoError(t, err)
	l.Info("hello", "n", 1)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestDefault_NeverNil(t *testing.T) {
	assert.NotNil(t, xlog.Default())
}

func TestWith_PrependsAttrs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.log")
	l, err := xlog.New(xlog.Config{Level: xlog.LevelInfo, File: path})
	require.NoError(t, err)
	scoped := l.With("model", "m1")
	scoped.Warn("slow seed")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "model=m1")
}
