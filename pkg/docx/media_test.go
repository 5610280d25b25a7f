package docx

import (
	"testing"
)

func TestSniffImageExtension(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
	}{
		{"PNG", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A}, ".png"},
		{"JPEG", []byte{0xFF, 0xD8, 0xFF, 0xE0}, ".jpg"},
		{"GIF", []byte("GIF89a"), ".gif"},
		{"WebP", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), ".webp"},
		{"BMP", []byte{0x42, 0x4D, 0x00, 0x00}, ".bmp"},
		{"UnknownDefaultsToPNG", []byte{0x00, 0x01, 0x02, 0x03}, ".png"},
		{"EmptyDefaultsToPNG", nil, ".png"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sniffImageExtension(tc.data); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestContentTypeByExtension(t *testing.T) {
	t.Run("KnownExtensions", func(t *testing.T) {
		if got := contentTypeByExtension(".jpeg"); got != "image/jpeg" {
			t.Errorf("expected image/jpeg, got %s", got)
		}
		if got := contentTypeByExtension(".svg"); got != "image/svg+xml" {
			t.Errorf("expected image/svg+xml, got %s", got)
		}
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		if got := contentTypeByExtension(".PNG"); got != "image/png" {
			t.Errorf("expected image/png, got %s", got)
		}
	})

	t.Run("UnknownDefaultsToPNG", func(t *testing.T) {
		if got := contentTypeByExtension(".xyz"); got != "image/png" {
			t.Errorf("expected image/png, got %s", got)
		}
	})
}
