package storage

import (
	"context"
	"encoding/base64"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStorage struct {
	path        string
	contentType string
	payload     []byte
}

func (r *recordingStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	r.path = path
	r.contentType = contentType
	r.payload, _ = io.ReadAll(file)
	return path, nil
}

func (r *recordingStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, nil
}

func (r *recordingStorage) Delete(ctx context.Context, path string) error { return nil }

func (r *recordingStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://files.local/" + path, nil
}

func (r *recordingStorage) Exists(ctx context.Context, path string) (bool, error) { return true, nil }

func pngDataURL(payload []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)
}

func TestDecodeDataURL(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47}

	contentType, raw, err := DecodeDataURL(pngDataURL(payload))
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, payload, raw)
}

func TestDecodeDataURL_Rejections(t *testing.T) {
	cases := map[string]string{
		"plain url":        "http://files.local/sig.png",
		"missing comma":    "data:image/png;base64",
		"not base64 coded": "data:image/png,rawbytes",
		"broken payload":   "data:image/png;base64,%%%",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeDataURL(input)
			assert.Error(t, err)
		})
	}
}

func TestSaveDataURL(t *testing.T) {
	fs := &recordingStorage{}
	payload := []byte("signature bytes")

	url, err := SaveDataURL(context.Background(), fs, "signatures", pngDataURL(payload))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://files.local/signatures/"))
	assert.True(t, strings.HasSuffix(fs.path, ".png"))
	assert.Equal(t, "image/png", fs.contentType)
	assert.Equal(t, payload, fs.payload)
}

func TestSaveDataURL_UnsupportedContentType(t *testing.T) {
	fs := &recordingStorage{}

	_, err := SaveDataURL(context.Background(), fs, "signatures", "data:application/zip;base64,"+base64.StdEncoding.EncodeToString([]byte("zip")))
	assert.Error(t, err)
	assert.Empty(t, fs.path)
}
