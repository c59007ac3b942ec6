package utils

import (
	"Foodgram-Backend/domain"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64Image(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	data := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	decoded, ext, err := DecodeBase64Image(data)

	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
	assert.Equal(t, "png", ext)
}

func TestDecodeBase64ImageRejectsMalformedInput(t *testing.T) {
	cases := map[string]string{
		"not a data uri":   "hello world",
		"wrong media type": "data:text/plain;base64,aGVsbG8=",
		"missing payload":  "data:image/png",
		"bad base64":       "data:image/png;base64,%%%%",
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeBase64Image(data)
			assert.ErrorIs(t, err, domain.ErrInvalidImageData)
		})
	}
}

func TestImageContentType(t *testing.T) {
	assert.Equal(t, "image/jpeg", ImageContentType("jpg"))
	assert.Equal(t, "image/jpeg", ImageContentType("jpeg"))
	assert.Equal(t, "image/png", ImageContentType("png"))
	assert.Equal(t, "application/octet-stream", ImageContentType("bmp"))
}
