package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/pkg/config"
)

type fakeS3 struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestPut(t *testing.T) {
	fake := &fakeS3{}
	s := newS3Storage(fake, "reportes", nil)

	err := s.Put(context.Background(), "daily/2024/03/r.xlsx", []byte("abc"), "application/octet-stream")
	require.NoError(t, err)

	assert.Equal(t, "reportes", aws.ToString(fake.in.Bucket))
	assert.Equal(t, "daily/2024/03/r.xlsx", aws.ToString(fake.in.Key))
	assert.Equal(t, "application/octet-stream", aws.ToString(fake.in.ContentType))
	assert.Equal(t, int64(3), aws.ToInt64(fake.in.ContentLength))
	assert.Equal(t, []byte("abc"), fake.body)
}

func TestPut_Error(t *testing.T) {
	s := newS3Storage(&fakeS3{err: errors.New("denied")}, "reportes", nil)

	err := s.Put(context.Background(), "k", []byte("x"), "text/plain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reportes/k")
}

func TestNewS3Storage_SinBucket(t *testing.T) {
	_, err := NewS3Storage(context.Background(), config.StorageConfig{}, nil)
	assert.Error(t, err)
}
