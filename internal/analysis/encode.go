package analysis

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// EncodeImageFile reads an image and returns it as a base64 data URI.
func EncodeImageFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	return EncodeImage(data), nil
}

// EncodeImage wraps raw bytes in a data URI, sniffing the MIME type.
func EncodeImage(data []byte) string {
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		mime = DefaultMIMEType
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
