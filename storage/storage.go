// Package storage saves uploaded files (blog attachments, photos, PDFs) and
// hands back the public path to store on the record. Local disk is the
// default; a Backblaze B2 bucket can be selected instead for deployments
// without a persistent filesystem.
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/kurin/blazer/b2"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/config"
)

// Uploader persists one uploaded file and returns the path or URL that gets
// stored on the record and served to browsers.
type Uploader interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// New selects the configured upload backend.
func New(ctx context.Context, cfg config.UploadConfig) (Uploader, error) {
	switch cfg.Backend {
	case "local", "":
		log.Printf("INFO: [Storage] Storing uploads under %s", cfg.Folder)
		return newLocalUploader(cfg.Folder)
	case "b2":
		log.Printf("INFO: [Storage] Storing uploads in B2 bucket %s", cfg.B2Bucket)
		return newB2Uploader(ctx, cfg.B2AccountID, cfg.B2AppKey, cfg.B2Bucket)
	default:
		return nil, fmt.Errorf("unknown upload backend %q", cfg.Backend)
	}
}

// safeFilename strips any path components and characters that have no
// business in a served filename.
func safeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" || name == "." || name == ".." {
		name = "file"
	}
	return name
}

type localUploader struct {
	folder string
}

func newLocalUploader(folder string) (Uploader, error) {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload folder %s: %w", folder, err)
	}
	return &localUploader{folder: folder}, nil
}

// Save writes the file under a unique name and returns "/uploads/<name>",
// which the server serves from the upload folder.
func (u *localUploader) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	name := uuid.New().String() + "_" + safeFilename(filename)
	dst := filepath.Join(u.folder, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return "/uploads/" + name, nil
}

type b2Uploader struct {
	bucket *b2.Bucket
}

func newB2Uploader(ctx context.Context, accountID, appKey, bucketName string) (Uploader, error) {
	client, err := b2.NewClient(ctx, accountID, appKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create b2 client: %w", err)
	}
	bucket, err := client.Bucket(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket: %w", err)
	}
	return &b2Uploader{bucket: bucket}, nil
}

// Save uploads the file to the bucket and returns its public download URL.
func (u *b2Uploader) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	key := uuid.New().String() + "_" + safeFilename(filename)
	obj := u.bucket.Object(key)
	w := obj.NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}
	return obj.URL(), nil
}
