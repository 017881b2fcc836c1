// AngelaMos | 2026
// s3_test.go

package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/config"
)

type fakeObjects struct {
	puts    []*s3.PutObjectInput
	bodies  []string
	putErr  error
	headErr error
}

func (f *fakeObjects) PutObject(
	_ context.Context,
	in *s3.PutObjectInput,
	_ ...func(*s3.Options),
) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, _ := io.ReadAll(in.Body)
	f.puts = append(f.puts, in)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) HeadBucket(
	_ context.Context,
	_ *s3.HeadBucketInput,
	_ ...func(*s3.Options),
) (*s3.HeadBucketOutput, error) {
	return &s3.HeadBucketOutput{}, f.headErr
}

func TestPutReturnsPublicURL(t *testing.T) {
	api := &fakeObjects{}
	store := NewS3StoreWithAPI(api, config.StorageConfig{
		Bucket:        "sponsor-docs",
		Region:        "us-east-1",
		PublicBaseURL: "https://cdn.example.com/",
	})

	url, err := store.Put(
		context.Background(),
		"sponsors/s1/logo/abc.png",
		"image/png",
		strings.NewReader("png-bytes"),
		9,
	)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/sponsors/s1/logo/abc.png", url)

	require.Len(t, api.puts, 1)
	assert.Equal(t, "sponsor-docs", aws.ToString(api.puts[0].Bucket))
	assert.Equal(t, "image/png", aws.ToString(api.puts[0].ContentType))
	assert.Equal(t, int64(9), aws.ToInt64(api.puts[0].ContentLength))
	assert.Equal(t, "png-bytes", api.bodies[0])
}

func TestPutFailure(t *testing.T) {
	api := &fakeObjects{putErr: errors.New("access denied")}
	store := NewS3StoreWithAPI(api, config.StorageConfig{Bucket: "b", Region: "r"})

	_, err := store.Put(context.Background(), "k", "text/plain", strings.NewReader("x"), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestPublicBase(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.StorageConfig
		want string
	}{
		{
			name: "explicit base",
			cfg:  config.StorageConfig{PublicBaseURL: "https://files.test", Bucket: "b"},
			want: "https://files.test",
		},
		{
			name: "custom endpoint",
			cfg:  config.StorageConfig{Endpoint: "http://minio:9000/", Bucket: "docs"},
			want: "http://minio:9000/docs",
		},
		{
			name: "aws default",
			cfg:  config.StorageConfig{Bucket: "docs", Region: "eu-west-1"},
			want: "https://docs.s3.eu-west-1.amazonaws.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicBase(tt.cfg))
		})
	}
}

func TestPing(t *testing.T) {
	api := &fakeObjects{}
	store := NewS3StoreWithAPI(api, config.StorageConfig{Bucket: "b"})
	assert.NoError(t, store.Ping(context.Background()))

	api.headErr = errors.New("no such bucket")
	assert.Error(t, store.Ping(context.Background()))
}
