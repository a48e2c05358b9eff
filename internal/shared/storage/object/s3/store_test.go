package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"resume-builder/internal/shared/storage/object"
)

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "jane_resume.pdf", want: "jane_resume.pdf"},
		{name: "simple prefix", prefix: "generated", key: "jane_resume.pdf", want: "generated/jane_resume.pdf"},
		{name: "prefix trailing slash", prefix: "generated/", key: "jane_resume.pdf", want: "generated/jane_resume.pdf"},
		{name: "prefix and key slashes", prefix: "/generated/", key: "/jane_resume.pdf", want: "generated/jane_resume.pdf"},
		{name: "nested prefix", prefix: "env/generated", key: "jane_resume.pdf", want: "env/generated/jane_resume.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

type fakeS3 struct {
	objects map[string][]byte
	lastPut *s3.PutObjectInput
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	f.lastPut = in
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) HeadObject(ctx context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[aws.ToString(in.Key)]; !ok {
		return nil, &s3types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func TestStoreRoundTripWithPrefix(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	store, err := NewWithClient(fake, "bucket", "/generated/", "")
	if err != nil {
		t.Fatalf("NewWithClient: %v", err)
	}
	ctx := context.Background()

	n, err := store.SaveWithKey(ctx, "jane_resume.pdf", "application/pdf", bytes.NewReader([]byte("%PDF")))
	if err != nil {
		t.Fatalf("SaveWithKey: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 bytes, got %d", n)
	}
	if _, ok := fake.objects["generated/jane_resume.pdf"]; !ok {
		t.Fatalf("expected prefixed key, got %v", fake.objects)
	}
	if fake.lastPut.ServerSideEncryption != s3types.ServerSideEncryptionAes256 {
		t.Fatalf("expected AES256 SSE, got %s", fake.lastPut.ServerSideEncryption)
	}
	if aws.ToInt64(fake.lastPut.ContentLength) != 4 {
		t.Fatalf("expected content length 4, got %d", aws.ToInt64(fake.lastPut.ContentLength))
	}
	if cd := aws.ToString(fake.lastPut.ContentDisposition); cd != `attachment; filename="jane_resume.pdf"` {
		t.Fatalf("unexpected content disposition %q", cd)
	}

	ok, err := store.Exists(ctx, "jane_resume.pdf")
	if err != nil || !ok {
		t.Fatalf("expected object to exist, ok=%v err=%v", ok, err)
	}
	rc, err := store.Open(ctx, "jane_resume.pdf")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	if string(body) != "%PDF" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestStoreMissingAndKMS(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	store, err := NewWithClient(fake, "bucket", "", "kms-key")
	if err != nil {
		t.Fatalf("NewWithClient: %v", err)
	}
	ctx := context.Background()

	if _, err := store.Open(ctx, "missing.pdf"); !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	ok, err := store.Exists(ctx, "missing.pdf")
	if err != nil || ok {
		t.Fatalf("expected missing, ok=%v err=%v", ok, err)
	}
	if _, err := store.SaveWithKey(ctx, "a.pdf", "application/pdf", bytes.NewReader(nil)); err != nil {
		t.Fatalf("SaveWithKey: %v", err)
	}
	if fake.lastPut.ServerSideEncryption != s3types.ServerSideEncryptionAwsKms || aws.ToString(fake.lastPut.SSEKMSKeyId) != "kms-key" {
		t.Fatalf("expected KMS encryption, got %s", fake.lastPut.ServerSideEncryption)
	}
	if _, err := store.SaveWithKey(ctx, "../x.pdf", "application/pdf", bytes.NewReader(nil)); !errors.Is(err, object.ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}

func TestNewWithClientRequiresBucket(t *testing.T) {
	if _, err := NewWithClient(&fakeS3{}, " ", "", ""); err == nil {
		t.Fatalf("expected error for empty bucket")
	}
}
