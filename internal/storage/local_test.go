package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return s
}

func TestLocalStorage_SaveGet(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	err := s.Save(ctx, "listings/img.png", strings.NewReader("fake-png-bytes"), "image/png")
	require.NoError(t, err)

	exists, err := s.Exists(ctx, "listings/img.png")
	require.NoError(t, err)
	assert.True(t, exists)

	size, err := s.GetSize(ctx, "listings/img.png")
	require.NoError(t, err)
	assert.Equal(t, int64(len("fake-png-bytes")), size)

	reader, err := s.Get(ctx, "listings/img.png")
	require.NoError(t, err)
	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(content))
}

func TestLocalStorage_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "listings/img.png", strings.NewReader("x"), "image/png"))
	require.NoError(t, s.Delete(ctx, "listings/img.png"))

	exists, err := s.Exists(ctx, "listings/img.png")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing file is not an error.
	assert.NoError(t, s.Delete(ctx, "listings/img.png"))
}

func TestLocalStorage_GetURL(t *testing.T) {
	ctx := context.Background()

	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	url, err := s.GetURL(ctx, "listings/img.png")
	require.NoError(t, err)
	assert.Equal(t, "/files/listings/img.png", url)

	s, err = NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "https://cdn.example.com/uploads"})
	require.NoError(t, err)
	url, err = s.GetURL(ctx, "listings/img.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/listings/img.png", url)
}

func TestNewStorage_UnsupportedType(t *testing.T) {
	_, err := NewStorage(Config{Type: "s3"})
	assert.Error(t, err)
}
