package utils

import (
	"Foodgram-Backend/domain"
	"encoding/base64"
	"strings"
)

// DecodeBase64Image parses a "data:image/<ext>;base64,<payload>" data URI
// and returns the raw image bytes together with the file extension.
func DecodeBase64Image(data string) ([]byte, string, error) {
	if !strings.HasPrefix(data, "data:image/") {
		return nil, "", domain.ErrInvalidImageData
	}

	format, payload, found := strings.Cut(data, ";base64,")
	if !found {
		return nil, "", domain.ErrInvalidImageData
	}

	ext := format[strings.LastIndex(format, "/")+1:]
	if ext == "" {
		return nil, "", domain.ErrInvalidImageData
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", domain.ErrInvalidImageData
	}

	return decoded, ext, nil
}

// ImageContentType maps a decoded extension to the Content-Type used when
// uploading the image to object storage.
func ImageContentType(ext string) string {
	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
