package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/config"
)

func TestSafeFilename(t *testing.T) {
	assert.Equal(t, "report.pdf", safeFilename("report.pdf"))
	assert.Equal(t, "my_notes_v2.pdf", safeFilename("my notes v2.pdf"))
	// Path components are stripped, not preserved.
	assert.Equal(t, "passwd", safeFilename("../../etc/passwd"))
	assert.Equal(t, "file", safeFilename(""))
	assert.Equal(t, "file", safeFilename(".."))
}

func TestLocalUploaderSave(t *testing.T) {
	ctx := context.Background()
	folder := t.TempDir()
	up, err := New(ctx, config.UploadConfig{Backend: "local", Folder: folder})
	require.NoError(t, err)

	path, err := up.Save(ctx, "hello world.txt", strings.NewReader("contents"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, "/uploads/"), "got %q", path)
	assert.True(t, strings.HasSuffix(path, "_hello_world.txt"))

	// The returned path maps onto a file inside the upload folder.
	name := strings.TrimPrefix(path, "/uploads/")
	raw, err := os.ReadFile(filepath.Join(folder, name))
	require.NoError(t, err)
	assert.Equal(t, "contents", string(raw))
}

func TestLocalUploaderUniqueNames(t *testing.T) {
	ctx := context.Background()
	up, err := New(ctx, config.UploadConfig{Backend: "local", Folder: t.TempDir()})
	require.NoError(t, err)

	first, err := up.Save(ctx, "photo.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := up.Save(ctx, "photo.jpg", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	_, err := New(context.Background(), config.UploadConfig{Backend: "ftp"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown upload backend")
}
