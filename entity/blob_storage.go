package entity

import (
	"context"
	"io"
)

// StorageRepository is the object-store contract used to fetch model weights
// from an S3-compatible mirror.
type StorageRepository interface {
	DownloadObject(ctx context.Context, bucket string, key string, w io.Writer) error
	UploadObject(ctx context.Context, bucket string, key string, r io.Reader) error
}

// FileObject is a named in-memory file, as unpacked from a model archive.
type FileObject struct {
	Name string
	Body []byte
}
