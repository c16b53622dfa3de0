// Package storage sube los reportes archivados a un bucket S3 compatible (AWS S3, MinIO, R2).
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/pkg/config"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

var _ ports.ObjectStorage = (*S3Storage)(nil)

// putObjectAPI subconjunto del cliente S3 que se usa (permite un fake en tests).
type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Storage implementa ports.ObjectStorage.
type S3Storage struct {
	client putObjectAPI
	bucket string
	log    *logger.Logger
}

// NewS3Storage construye el cliente. Sin access key se usa la cadena de credenciales por defecto
// (variables AWS_*, perfil o rol de instancia). Con endpoint se apunta a un servicio compatible.
func NewS3Storage(ctx context.Context, cfg config.StorageConfig, log *logger.Logger) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage: bucket requerido")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: config aws: %w", err)
	}

	endpoint := cfg.Endpoint
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return newS3Storage(client, cfg.Bucket, log), nil
}

func newS3Storage(client putObjectAPI, bucket string, log *logger.Logger) *S3Storage {
	if log == nil {
		log = logger.Nop()
	}
	return &S3Storage{client: client, bucket: bucket, log: log.Component("storage")}
}

// Put sube body bajo key. Una clave existente se sobrescribe.
func (s *S3Storage) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return fmt.Errorf("storage: put %s/%s: %w", s.bucket, key, err)
	}
	s.log.Debug().Str("bucket", s.bucket).Str("key", key).Int("bytes", len(body)).Msg("objeto subido")
	return nil
}
