// Package storage wraps the private Firebase Storage bucket that holds
// item images. The bucket is not publicly readable; images are served
// exclusively through signed URLs.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Bucket handles uploads to and URL signing for the item-images bucket.
type Bucket struct {
	handle *gcs.BucketHandle
	name   string
}

// NewBucket initializes the Firebase app and resolves the default bucket.
func NewBucket(ctx context.Context, credentialsFile, bucketName string) (*Bucket, error) {
	if bucketName == "" {
		return nil, errors.New("storage bucket name is required")
	}

	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get storage client: %w", err)
	}

	handle, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bucket %q: %w", bucketName, err)
	}

	return &Bucket{handle: handle, name: bucketName}, nil
}

// Upload stores the object at the given path, overwriting any existing object.
func (b *Bucket) Upload(ctx context.Context, objectPath string, r io.Reader, contentType string) error {
	w := b.handle.Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("failed to write object %q: %w", objectPath, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize object %q: %w", objectPath, err)
	}

	return nil
}

// SignedURL issues a time-limited V4 retrieval URL for a stored object.
func (b *Bucket) SignedURL(objectPath string, ttl time.Duration) (string, error) {
	url, err := b.handle.SignedURL(objectPath, &gcs.SignedURLOptions{
		Method:  http.MethodGet,
		Expires: time.Now().Add(ttl),
		Scheme:  gcs.SigningSchemeV4,
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign url for %q: %w", objectPath, err)
	}

	return url, nil
}
