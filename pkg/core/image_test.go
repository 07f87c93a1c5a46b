package core

import (
	"testing"
)

func TestImageDataURI(t *testing.T) {
	img := Image{Data: []byte("hello"), MIMEType: "image/png"}
	uri := img.DataURI()
	if uri != "data:image/png;base64,aGVsbG8=" {
		t.Fatalf("unexpected data URI %q", uri)
	}

	back, err := ParseDataURI(uri)
	if err != nil {
		t.Fatalf("ParseDataURI failed: %v", err)
	}
	if string(back.Data) != "hello" || back.MIMEType != "image/png" {
		t.Errorf("round trip mismatch: %+v", back)
	}
}

func TestNewImageSniffsMIME(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
	if got := NewImage(jpeg).MIMEType; got != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", got)
	}
}

func TestParseDataURIErrors(t *testing.T) {
	for _, in := range []string{
		"https://example.com/label.jpg",
		"data:image/png;base64",
		"data:image/png,plain",
		"data:image/png;base64,!!!",
	} {
		if _, err := ParseDataURI(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestEmptyMIMEType(t *testing.T) {
	uri := Image{Data: []byte{1}}.DataURI()
	if uri != "data:application/octet-stream;base64,AQ==" {
		t.Errorf("unexpected data URI %q", uri)
	}
}

// heicHeader is the leading ftyp box of an iPhone HEIC photo.
func heicHeader() []byte {
	return []byte{
		0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'h', 'e', 'i', 'c',
		0x00, 0x00, 0x00, 0x00, 'm', 'i', 'f', '1', 'h', 'e', 'i', 'c',
	}
}

func TestNewImageSniffsHEIF(t *testing.T) {
	if got := NewImage(heicHeader()).MIMEType; got != "image/heic" {
		t.Errorf("expected image/heic, got %s", got)
	}

	mif1 := heicHeader()
	copy(mif1[8:12], "mif1")
	if got := NewImage(mif1).MIMEType; got != "image/heif" {
		t.Errorf("expected image/heif, got %s", got)
	}
}

func TestNewImageFile(t *testing.T) {
	tests := []struct {
		name string
		path string
		data []byte
		want string
	}{
		{"content wins", "label.png", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}, "image/jpeg"},
		{"heic content", "IMG_0001.HEIC", heicHeader(), "image/heic"},
		{"heic extension", "IMG_0002.heic", []byte{0, 0, 0, 0, 'x', 'x'}, "image/heic"},
		{"heif extension", "label.HEIF", []byte("opaque"), "image/heif"},
		{"jpeg extension", "label.jpg", []byte("hello"), "image/jpeg"},
		{"no image extension", "notes.txt", []byte("hello"), "text/plain; charset=utf-8"},
		{"no extension", "label", []byte{0, 1, 2}, "application/octet-stream"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewImageFile(tt.path, tt.data).MIMEType; got != tt.want {
				t.Errorf("NewImageFile(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}
