package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// Bucket stores cover images in an object store addressed by a gocloud URL
// (s3://bucket?endpoint=..., file:///dir, mem://).
type Bucket struct {
	bk *blob.Bucket
}

// Open opens the bucket at url.
func Open(ctx context.Context, url string) (*Bucket, error) {
	bk, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket: %w", err)
	}
	return &Bucket{bk: bk}, nil
}

// NewBucket wraps an already opened bucket.
func NewBucket(bk *blob.Bucket) *Bucket {
	return &Bucket{bk: bk}
}

// Put writes data under key, replacing any existing object.
func (b *Bucket) Put(ctx context.Context, key string, data []byte, contentType string) error {
	key = sanitizeKey(key)
	if key == "" {
		return errors.New("empty object key")
	}
	if err := b.bk.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

// Close releases the bucket.
func (b *Bucket) Close() error {
	return b.bk.Close()
}

// CoverKey is the object key for an app's cover image.
func CoverKey(appID int64) string {
	return fmt.Sprintf("%d.jpg", appID)
}

// sanitizeKey prevents path traversal.
func sanitizeKey(key string) string {
	parts := strings.Split(path.Clean("/"+key), "/")
	out := parts[:0]
	for _, p := range parts {
		if p == "" || p == "." || p == ".." {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, "/")
}
