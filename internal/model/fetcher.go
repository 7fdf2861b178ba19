// Package model downloads and verifies the voice-cloning model weights.
// Weights live on an S3-compatible mirror as a tar.gz archive plus a JSON
// manifest of per-file SHA-256 checksums.
package model

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"voice_cloning/config"
	"voice_cloning/entity"
	"voice_cloning/pkg/archive"
	"voice_cloning/pkg/logger"
)

const traceName = "Model-Fetcher"

const (
	dirPermissions  = 0o750
	filePermissions = 0o644
)

// Manifest lists the files of a model release and their SHA-256 checksums.
type Manifest struct {
	Name  string            `json:"name"`
	Files map[string]string `json:"files"`
}

type Fetcher struct {
	storage  entity.StorageRepository
	archiver archive.Archiver
	l        logger.Interface

	modelName   string
	dir         string
	bucket      string
	archiveKey  string
	manifestKey string
}

func NewFetcher(cfg *config.Config, storage entity.StorageRepository, l logger.Interface) *Fetcher {
	return &Fetcher{
		storage:     storage,
		archiver:    archive.NewTarGzArchiver(),
		l:           l,
		modelName:   cfg.Model.Name,
		dir:         cfg.Model.Dir,
		bucket:      cfg.Model.Bucket,
		archiveKey:  cfg.Model.ArchiveKey,
		manifestKey: cfg.Model.ManifestKey,
	}
}

// Fetch downloads the model archive, verifies every file against the
// manifest and unpacks the result into the model directory.
func (f *Fetcher) Fetch(ctx context.Context) error {
	ctx, span := otel.Tracer(traceName).Start(ctx, "Fetch")
	defer span.End()

	span.SetAttributes(attribute.String("model", f.modelName))

	manifest, err := f.downloadManifest(ctx)
	if err != nil {
		return err
	}

	f.l.Info("fetching model %s (%d files)", f.modelName, len(manifest.Files))

	archiveBuf := new(bytes.Buffer)
	if err := f.storage.DownloadObject(ctx, f.bucket, f.archiveKey, archiveBuf); err != nil {
		return errors.Wrap(err, "download model archive")
	}

	files, err := f.archiver.Extract(ctx, archiveBuf)
	if err != nil {
		return errors.Wrap(err, "extract model archive")
	}

	if err := verify(manifest, files); err != nil {
		return err
	}

	if err := os.MkdirAll(f.dir, dirPermissions); err != nil {
		return errors.Wrap(err, "create model dir")
	}

	for _, file := range files {
		name := filepath.Clean(file.Name)
		if strings.HasPrefix(name, "..") || filepath.IsAbs(name) {
			return fmt.Errorf("archive entry %q escapes the model dir", file.Name)
		}

		dest := filepath.Join(f.dir, name)

		if err := os.MkdirAll(filepath.Dir(dest), dirPermissions); err != nil {
			return errors.Wrapf(err, "create dir for %s", name)
		}

		if err := os.WriteFile(dest, file.Body, filePermissions); err != nil {
			return errors.Wrapf(err, "write %s", name)
		}

		f.l.Debug("wrote %s (%d bytes)", dest, len(file.Body))
	}

	f.l.Info("model %s unpacked into %s", f.modelName, f.dir)

	return nil
}

// Publish packs the local model directory and uploads archive and manifest
// to the mirror. Used when cutting a new model release.
func (f *Fetcher) Publish(ctx context.Context) error {
	ctx, span := otel.Tracer(traceName).Start(ctx, "Publish")
	defer span.End()

	files, err := f.readModelDir()
	if err != nil {
		return err
	}

	manifest := Manifest{Name: f.modelName, Files: make(map[string]string, len(files))}
	for _, file := range files {
		manifest.Files[file.Name] = checksum(file.Body)
	}

	archiveBuf := new(bytes.Buffer)
	if err := f.archiver.Compress(ctx, files, archiveBuf); err != nil {
		return errors.Wrap(err, "pack model archive")
	}

	if err := f.storage.UploadObject(ctx, f.bucket, f.archiveKey, archiveBuf); err != nil {
		return errors.Wrap(err, "upload model archive")
	}

	manifestJSON, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal manifest")
	}

	if err := f.storage.UploadObject(ctx, f.bucket, f.manifestKey, bytes.NewReader(manifestJSON)); err != nil {
		return errors.Wrap(err, "upload manifest")
	}

	f.l.Info("published model %s: %d files", f.modelName, len(files))

	return nil
}

func (f *Fetcher) downloadManifest(ctx context.Context) (Manifest, error) {
	buf := new(bytes.Buffer)
	if err := f.storage.DownloadObject(ctx, f.bucket, f.manifestKey, buf); err != nil {
		return Manifest{}, errors.Wrap(err, "download manifest")
	}

	var manifest Manifest
	if err := json.Unmarshal(buf.Bytes(), &manifest); err != nil {
		return Manifest{}, errors.Wrap(err, "parse manifest")
	}

	if len(manifest.Files) == 0 {
		return Manifest{}, fmt.Errorf("manifest for %s lists no files", f.modelName)
	}

	return manifest, nil
}

func (f *Fetcher) readModelDir() ([]entity.FileObject, error) {
	var files []entity.FileObject

	err := filepath.Walk(f.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(f.dir, path)
		if err != nil {
			return err
		}

		files = append(files, entity.FileObject{Name: filepath.ToSlash(rel), Body: body})

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "read model dir")
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("model dir %s is empty", f.dir)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	return files, nil
}

func verify(manifest Manifest, files []entity.FileObject) error {
	seen := make(map[string]bool, len(files))

	for _, file := range files {
		want, ok := manifest.Files[file.Name]
		if !ok {
			return fmt.Errorf("archive contains %q which is not in the manifest", file.Name)
		}

		if got := checksum(file.Body); got != want {
			return fmt.Errorf("checksum mismatch for %q: got %s, want %s", file.Name, got, want)
		}

		seen[file.Name] = true
	}

	for name := range manifest.Files {
		if !seen[name] {
			return fmt.Errorf("manifest lists %q but the archive does not contain it", name)
		}
	}

	return nil
}

func checksum(b []byte) string {
	sum := sha256.Sum256(b)

	return hex.EncodeToString(sum[:])
}
