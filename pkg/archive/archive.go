// Package archive packs and unpacks gzipped tar archives of in-memory files.
// Model weights are distributed as one such archive.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"

	"voice_cloning/entity"
)

const traceName = "Archive"

type Archiver interface {
	Compress(ctx context.Context, fileObjects []entity.FileObject, buf io.Writer) error
	Extract(ctx context.Context, r io.Reader) ([]entity.FileObject, error)
}

type TarGzArchiver struct {
}

func NewTarGzArchiver() Archiver {
	return &TarGzArchiver{}
}

func (a *TarGzArchiver) Compress(ctx context.Context, fileObjects []entity.FileObject, buf io.Writer) error {
	_, span := otel.Tracer(traceName).Start(ctx, "compress - targz")
	defer span.End()

	gz := gzip.NewWriter(buf)
	defer gz.Close()

	tw := tar.NewWriter(gz)
	defer tw.Close()

	for _, fileObject := range fileObjects {
		hdr := &tar.Header{
			Name: fileObject.Name,
			Mode: int64(0600),
			Size: int64(len(fileObject.Body)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("write tar header for %s: %w", fileObject.Name, err)
		}

		if _, err := tw.Write(fileObject.Body); err != nil {
			return fmt.Errorf("write tar body for %s: %w", fileObject.Name, err)
		}
	}

	return nil
}

func (a *TarGzArchiver) Extract(ctx context.Context, r io.Reader) ([]entity.FileObject, error) {
	_, span := otel.Tracer(traceName).Start(ctx, "extract - targz")
	defer span.End()

	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	defer gz.Close()

	var extractedFiles []entity.FileObject

	tr := tar.NewReader(gz)

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read tar entry: %w", err)
		}

		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		fileBody, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("read tar body for %s: %w", hdr.Name, err)
		}

		extractedFiles = append(extractedFiles, entity.FileObject{Name: hdr.Name, Body: fileBody})
	}

	return extractedFiles, nil
}
