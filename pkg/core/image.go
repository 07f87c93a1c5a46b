package core

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// Image is a captured label photo.
type Image struct {
	Data     []byte
	MIMEType string
}

// NewImage wraps raw bytes, sniffing the MIME type from the content.
func NewImage(data []byte) Image {
	return Image{Data: data, MIMEType: sniffMIME(data)}
}

// NewImageFile is NewImage for a photo read from path. When the content does
// not sniff as an image, the file extension decides.
func NewImageFile(path string, data []byte) Image {
	img := NewImage(data)
	if IsImageMIME(img.MIMEType) {
		return img
	}
	if typ := typeByExtension(filepath.Ext(path)); IsImageMIME(typ) {
		img.MIMEType = typ
	}
	return img
}

// IsImageMIME reports whether typ names an image/* media type.
func IsImageMIME(typ string) bool {
	return strings.HasPrefix(strings.ToLower(typ), "image/")
}

// Phone cameras save HEIF containers, which http.DetectContentType does not
// know. They start with an ISO BMFF "ftyp" box naming the brand.
var heifBrands = map[string]string{
	"heic": "image/heic",
	"heix": "image/heic",
	"heim": "image/heic",
	"heis": "image/heic",
	"hevc": "image/heic-sequence",
	"hevx": "image/heic-sequence",
	"mif1": "image/heif",
	"msf1": "image/heif-sequence",
}

func sniffMIME(data []byte) string {
	if len(data) >= 12 && string(data[4:8]) == "ftyp" {
		if typ, ok := heifBrands[string(data[8:12])]; ok {
			return typ
		}
	}
	return http.DetectContentType(data)
}

func typeByExtension(ext string) string {
	switch strings.ToLower(ext) {
	case ".heic":
		return "image/heic"
	case ".heif":
		return "image/heif"
	case "":
		return ""
	}
	typ, _, err := mime.ParseMediaType(mime.TypeByExtension(ext))
	if err != nil {
		return ""
	}
	return typ
}

// Base64 returns the standard base64 encoding of the image bytes.
func (img Image) Base64() string {
	return base64.StdEncoding.EncodeToString(img.Data)
}

// DataURI encodes the image as a data URI, the form stored in WineNote.ImageURL.
func (img Image) DataURI() string {
	mime := img.MIMEType
	if mime == "" {
		mime = "application/octet-stream"
	}
	return "data:" + mime + ";base64," + img.Base64()
}

// ParseDataURI decodes a base64 data URI produced by DataURI.
func ParseDataURI(uri string) (Image, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return Image{}, errors.New("not a data URI")
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return Image{}, errors.New("data URI has no payload")
	}
	mime, ok := strings.CutSuffix(header, ";base64")
	if !ok {
		return Image{}, errors.New("data URI is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("invalid data URI payload: %w", err)
	}
	return Image{Data: data, MIMEType: mime}, nil
}
