package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

type fakePresigner struct {
	lastInput *s3.PutObjectInput
	err       error
}

func (f *fakePresigner) PresignPutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.PresignOptions)) (string, error) {
	f.lastInput = in
	if f.err != nil {
		return "", f.err
	}
	return "https://s3.example/" + *in.Key + "?signature=abc", nil
}

func newFakeUploadService(f *fakePresigner) *UploadService {
	svc := NewUploadService(S3Config{Bucket: "dormdesk-uploads", Region: "ap-southeast-1"})
	svc.newPresignClient = func(ctx context.Context) (presignAPI, error) { return f, nil }
	return svc
}

func TestPresignPut(t *testing.T) {
	ctx := context.Background()
	fake := &fakePresigner{}
	svc := newFakeUploadService(fake)

	t.Run("rejects non-image content types", func(t *testing.T) {
		_, err := svc.PresignPut(ctx, "user-1", "application/pdf")
		require.ErrorIs(t, err, ErrUnsupportedUpload)
	})

	t.Run("issues a scoped key and url", func(t *testing.T) {
		up, err := svc.PresignPut(ctx, "user-1", "image/png")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(up.Key, "uploads/user-1/"))
		require.Contains(t, up.URL, up.Key)

		require.Equal(t, "dormdesk-uploads", *fake.lastInput.Bucket)
		require.Equal(t, "image/png", *fake.lastInput.ContentType)
	})

	t.Run("propagates presign errors", func(t *testing.T) {
		fake.err = errors.New("endpoint unreachable")
		_, err := svc.PresignPut(ctx, "user-1", "image/jpeg")
		require.Error(t, err)
	})
}
