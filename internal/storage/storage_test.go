package storage

import (
	"bytes"
	"encoding/base64"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG.
var pngPixel, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII=")

func TestLocalStorage_PutOpenDelete(t *testing.T) {
	s := NewLocalStorage(t.TempDir())

	n, err := s.Put("a/b.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	ok, err := s.Exists("a/b.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	obj, err := s.Open("a/b.txt")
	require.NoError(t, err)
	data, err := io.ReadAll(obj)
	require.NoError(t, err)
	require.NoError(t, obj.Close())
	assert.Equal(t, "hello", string(data))

	require.NoError(t, s.Delete("a/b.txt"))
	ok, err = s.Exists("a/b.txt")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStorage_StaysUnderRoot(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStorage(root)

	_, err := s.Put("../../escape.txt", strings.NewReader("x"))
	require.NoError(t, err)

	ok, err := NewLocalStorage(root).Exists("escape.txt")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUploader_SavesImage(t *testing.T) {
	s := NewLocalStorage(t.TempDir())
	u := NewUploader(s, "/uploads/", 1<<20)
	u.now = func() time.Time { return time.UnixMilli(1700000000000) }

	up, err := u.Save("Logo.PNG", bytes.NewReader(pngPixel))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(up.Name, "1700000000000-"))
	assert.True(t, strings.HasSuffix(up.Name, ".png"))
	assert.Equal(t, "/uploads/"+up.Name, up.URL)
	assert.Equal(t, "image/png", up.MIME)
	assert.Equal(t, int64(len(pngPixel)), up.Size)

	ok, err := s.Exists(up.Name)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUploader_UsesDetectedExtension(t *testing.T) {
	u := NewUploader(NewLocalStorage(t.TempDir()), "/uploads", 1<<20)
	up, err := u.Save("blob", bytes.NewReader(pngPixel))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(up.Name, ".png"))
}

func TestUploader_Rejects(t *testing.T) {
	u := NewUploader(NewLocalStorage(t.TempDir()), "/uploads", int64(len(pngPixel)-1))

	_, err := u.Save("logo.png", bytes.NewReader(pngPixel))
	assert.ErrorIs(t, err, ErrTooLarge)

	u = NewUploader(NewLocalStorage(t.TempDir()), "/uploads", 1<<20)
	_, err = u.Save("notes.txt", strings.NewReader("just some text"))
	assert.ErrorIs(t, err, ErrNotImage)

	_, err = u.Save("empty.png", bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestUploader_Discard(t *testing.T) {
	local := NewLocalStorage(t.TempDir())
	u := NewUploader(local, "/uploads", 1<<20)
	up, err := u.Save("logo.png", bytes.NewReader(pngPixel))
	require.NoError(t, err)

	require.NoError(t, u.Discard(up.Name))
	ok, err := local.Exists(up.Name)
	require.NoError(t, err)
	assert.False(t, ok)
}
