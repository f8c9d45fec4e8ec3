package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// extensions for the content types signature pads and phone cameras
// actually produce.
var extByContentType = map[string]string{
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// DecodeDataURL splits a "data:<content-type>;base64,<payload>" string
// into its content type and decoded bytes.
func DecodeDataURL(dataURL string) (string, []byte, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return "", nil, fmt.Errorf("not a data URL")
	}

	meta, payload, found := strings.Cut(dataURL[len("data:"):], ",")
	if !found {
		return "", nil, fmt.Errorf("malformed data URL")
	}

	contentType := strings.TrimSuffix(meta, ";base64")
	if contentType == meta {
		return "", nil, fmt.Errorf("only base64 data URLs are supported")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode base64 payload: %w", err)
	}

	return contentType, raw, nil
}

// SaveDataURL decodes a data URL and stores the payload under the given
// prefix, returning a public URL for the stored file.
func SaveDataURL(ctx context.Context, fs FileStorage, prefix, dataURL string) (string, error) {
	contentType, raw, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", err
	}

	ext, ok := extByContentType[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported content type: %s", contentType)
	}

	path := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)
	if _, err := fs.Upload(ctx, bytes.NewReader(raw), path, contentType); err != nil {
		return "", err
	}

	return fs.GetURL(ctx, path, 0)
}
