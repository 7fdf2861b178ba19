// Package s3repo implements the StorageRepository contract on any
// S3-compatible object store (MinIO in development, AWS in production).
// It only ever moves model weights; session audio never reaches it.
package s3repo

import (
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/otel"

	"voice_cloning/config"
	"voice_cloning/entity"
)

const traceName = "S3-Repo"

type S3Repository struct {
	sess *s3.Client
}

var _ entity.StorageRepository = (*S3Repository)(nil)

func NewS3Repository(cfg config.S3) (*S3Repository, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...any) (aws.Endpoint, error) {
		if cfg.Endpoint == "" {
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		}

		return aws.Endpoint{
			PartitionID:       "aws",
			SigningRegion:     cfg.Region,
			URL:               cfg.Endpoint,
			HostnameImmutable: true,
		}, nil
	})

	awsCfg := aws.Config{
		Region:                      cfg.Region,
		EndpointResolverWithOptions: resolver,
		Credentials:                 credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}

	s3Client := s3.NewFromConfig(awsCfg)

	return &S3Repository{s3Client}, nil
}

func (s3Repo *S3Repository) DownloadObject(ctx context.Context, bucket string, key string, w io.Writer) error {
	ctx, span := otel.Tracer(traceName).Start(ctx, "DownloadObject")
	defer span.End()

	downloader := manager.NewDownloader(s3Repo.sess)

	bw := manager.NewWriteAtBuffer(nil)

	numBytes, err := downloader.Download(ctx, bw, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return err
	}

	if numBytes < 1 {
		return errors.New("zero bytes written to memory")
	}

	if _, err := w.Write(bw.Bytes()); err != nil {
		return err
	}

	return nil
}

func (s3Repo *S3Repository) UploadObject(ctx context.Context, bucket string, key string, r io.Reader) error {
	ctx, span := otel.Tracer(traceName).Start(ctx, "UploadObject")
	defer span.End()

	uploader := manager.NewUploader(s3Repo.sess)

	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return err
	}

	return nil
}
