package util

import (
	"encoding/base64"
	"testing"
)

func TestIsImageDataURL(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"data:image/png;base64,iVBORw0KGgo=", true},
		{"  data:image/jpeg;base64,/9j/4AAQ", true},
		{"data:application/pdf;base64,JVBERi0=", false},
		{"photo.jpg", false},
		{"", false},
		{"iVBORw0KGgo=", false},
	}
	for _, tc := range cases {
		if got := IsImageDataURL(tc.in); got != tc.ok {
			t.Errorf("IsImageDataURL(%q) = %v, want %v", tc.in, got, tc.ok)
		}
	}
}

func TestDecodeBase64MaybeDataURL(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	b64 := base64.StdEncoding.EncodeToString(payload)

	b, mime, err := DecodeBase64MaybeDataURL("data:image/jpeg;base64," + b64)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if mime != "image/jpeg" {
		t.Errorf("mime: got %q", mime)
	}
	if len(b) != len(payload) {
		t.Errorf("payload length: got %d", len(b))
	}

	// Bare base64 without a prefix still decodes, with no MIME hint.
	b, mime, err = DecodeBase64MaybeDataURL(b64)
	if err != nil || mime != "" || len(b) != len(payload) {
		t.Errorf("bare base64: b=%v mime=%q err=%v", b, mime, err)
	}

	if _, _, err := DecodeBase64MaybeDataURL("not base64 at all!!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
}

func TestStripCodeFences(t *testing.T) {
	in := "```json\n{\"report\":\"r\"}\n```"
	if got := StripCodeFences(in); got != `{"report":"r"}` {
		t.Errorf("got %q", got)
	}
	if got := StripCodeFences(`{"a":1}`); got != `{"a":1}` {
		t.Errorf("unfenced input changed: %q", got)
	}
}
