package assistant

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// decodeImage decodes a base64 image, tolerating a data-URI prefix.
func decodeImage(imageBase64 string) ([]byte, error) {
	payload := strings.TrimSpace(imageBase64)
	if strings.HasPrefix(payload, "data:") {
		if i := strings.Index(payload, ","); i != -1 {
			payload = payload[i+1:]
		}
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image data: %w", err)
	}
	return data, nil
}
