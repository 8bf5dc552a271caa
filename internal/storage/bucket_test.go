package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestPut_WritesWithContentType(t *testing.T) {
	ctx := context.Background()
	mem := memblob.OpenBucket(nil)
	b := NewBucket(mem)
	defer b.Close()

	require.NoError(t, b.Put(ctx, CoverKey(1145360), []byte("jpeg"), "image/jpeg"))

	data, err := mem.ReadAll(ctx, "1145360.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), data)

	attrs, err := mem.Attributes(ctx, "1145360.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)
}

func TestPut_Overwrites(t *testing.T) {
	ctx := context.Background()
	mem := memblob.OpenBucket(nil)
	b := NewBucket(mem)
	defer b.Close()

	require.NoError(t, b.Put(ctx, "1.jpg", []byte("old"), "image/jpeg"))
	require.NoError(t, b.Put(ctx, "1.jpg", []byte("new"), "image/jpeg"))

	data, err := mem.ReadAll(ctx, "1.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}

func TestPut_RejectsEmptyKey(t *testing.T) {
	b := NewBucket(memblob.OpenBucket(nil))
	defer b.Close()

	assert.Error(t, b.Put(context.Background(), "../", []byte("x"), "image/jpeg"))
}

func TestOpen_FileURL(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	b, err := Open(ctx, "file://"+filepath.ToSlash(dir))
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.Put(ctx, CoverKey(620), []byte("portal"), "image/jpeg"))

	data, err := os.ReadFile(filepath.Join(dir, "620.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("portal"), data)
}

func TestOpen_UnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "nope://bucket")
	assert.Error(t, err)
}

func TestSanitizeKey(t *testing.T) {
	assert.Equal(t, "a/b.jpg", sanitizeKey("/a/./b.jpg"))
	assert.Equal(t, "etc/passwd", sanitizeKey("../../etc/passwd"))
	assert.Equal(t, "", sanitizeKey(".."))
}
