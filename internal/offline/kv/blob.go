package kv

import (
	"context"

	"dealdrop/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// store URLs
	_ "gocloud.dev/blob/memblob"  // mem:// store URLs
	"gocloud.dev/gcerrors"
)

// BlobStore persists values as objects in a gocloud.dev bucket. Local
// deployments use file:// URLs so cached state survives process restarts.
type BlobStore struct {
	bucket *blob.Bucket
}

// OpenBlobStore opens the bucket behind a gocloud.dev URL such as
// "file:///var/lib/dealdrop/offline" or "mem://".
func OpenBlobStore(ctx context.Context, storeURL string) (*BlobStore, error) {
	bucket, err := blob.OpenBucket(ctx, storeURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open blob bucket %q", storeURL)
	}
	return &BlobStore{bucket: bucket}, nil
}

// Get retrieves the value for a key, or ErrNotFound.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "read blob %q", key)
	}
	return data, nil
}

// Set stores a value under a key, replacing any existing value.
func (s *BlobStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.bucket.WriteAll(ctx, key, value, nil); err != nil {
		return errors.Wrapf(err, "write blob %q", key)
	}
	return nil
}

// Remove deletes a key. Removing a missing key is not an error.
func (s *BlobStore) Remove(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete blob %q", key)
	}
	return nil
}

// Close releases the underlying bucket.
func (s *BlobStore) Close() error {
	return s.bucket.Close()
}
