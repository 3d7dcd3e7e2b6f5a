package util

import (
	"encoding/base64"
	"net/http"
	"strings"
)

const imageDataURLPrefix = "data:image/"

// IsImageDataURL reports whether s looks like a base64 data URL for a raster
// image. This is the only input check the analyze route performs before
// spending an upstream call.
func IsImageDataURL(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), imageDataURLPrefix)
}

func MakeDataURL(mime, b64 string) string {
	return "data:" + mime + ";base64," + b64
}

// DecodeBase64MaybeDataURL decodes base64 content. For a data: URI it also
// returns the MIME type from the prefix.
func DecodeBase64MaybeDataURL(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	var hintMIME string
	if strings.HasPrefix(s, "data:") {
		// data:<mime>;base64,<payload>
		if idx := strings.IndexByte(s, ','); idx > 0 {
			meta := s[len("data:"):idx]
			if semi := strings.IndexByte(meta, ';'); semi >= 0 {
				hintMIME = meta[:semi]
			} else {
				hintMIME = meta
			}
			s = s[idx+1:]
		}
	}
	// Standard base64 first, URL-safe as fallback.
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, hintMIME, nil
	} else if b2, err2 := base64.URLEncoding.DecodeString(s); err2 == nil {
		return b2, hintMIME, nil
	} else {
		return nil, "", err
	}
}

// PickMIME prefers the data:URI hint, then sniffs the bytes.
func PickMIME(hint string, data []byte) string {
	if h := strings.TrimSpace(hint); h != "" {
		return h
	}
	if len(data) > 0 {
		return http.DetectContentType(data)
	}
	return "image/jpeg"
}

// StripCodeFences removes a ```json ... ``` wrapper some models add around
// their JSON despite the strict response format.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
