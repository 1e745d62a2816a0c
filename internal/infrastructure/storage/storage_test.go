package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsportal/opsportal/internal/shared/config"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

func TestLocalStore_SameBytesSameURL(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/files/sops/", logger.NewNopLogger())
	require.NoError(t, err)
	ctx := context.Background()

	first, err := store.Save(ctx, "Drill.PDF", strings.NewReader("evacuate via stairs"), "application/pdf")
	require.NoError(t, err)
	second, err := store.Save(ctx, "drill-copy.pdf", strings.NewReader("evacuate via stairs"), "application/pdf")
	require.NoError(t, err)
	other, err := store.Save(ctx, "drill.pdf", strings.NewReader("evacuate via lift"), "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.True(t, strings.HasPrefix(first, "/files/sops/"))
	assert.True(t, strings.HasSuffix(first, ".pdf"))

	content, err := os.ReadFile(filepath.Join(dir, filepath.Base(first)))
	require.NoError(t, err)
	assert.Equal(t, "evacuate via stairs", string(content))
}

func TestLocalStore_RejectsEmpty(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/files", logger.NewNopLogger())
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "empty.pdf", strings.NewReader(""), "")
	assert.Error(t, err)
}

type fakeS3 struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Store_Save(t *testing.T) {
	fake := &fakeS3{}
	store := &S3Store{client: fake, bucket: "sops", publicURL: "https://cdn.example.com/sops", logger: logger.NewNopLogger()}

	url, err := store.Save(context.Background(), "policy.docx", strings.NewReader("v2"), "")
	require.NoError(t, err)

	assert.Equal(t, "sops", *fake.input.Bucket)
	assert.Equal(t, "application/octet-stream", *fake.input.ContentType)
	assert.Equal(t, "v2", fake.body)
	assert.True(t, strings.HasPrefix(*fake.input.Key, "sops/"))
	assert.Equal(t, "https://cdn.example.com/sops/"+*fake.input.Key, url)
}

func TestS3Store_SaveError(t *testing.T) {
	fake := &fakeS3{err: errors.New("access denied")}
	store := &S3Store{client: fake, bucket: "sops", publicURL: "https://cdn.example.com", logger: logger.NewNopLogger()}

	_, err := store.Save(context.Background(), "a.pdf", strings.NewReader("x"), "application/pdf")
	assert.ErrorContains(t, err, "access denied")
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), &config.StorageConfig{Driver: "ftp"}, logger.NewNopLogger())
	assert.Error(t, err)
}

func TestNewS3Store_RequiresCredentials(t *testing.T) {
	_, err := NewS3Store(context.Background(), &config.S3Config{Bucket: "b"}, logger.NewNopLogger())
	assert.Error(t, err)
}
