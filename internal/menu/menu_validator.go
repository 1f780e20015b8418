package menu

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var allowedExt = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".webp": true,
}

// IsAllowedImage reports whether a MIME type is one the model accepts for
// menu photos. Parameters such as charset are ignored.
func IsAllowedImage(mimeType string) bool {
	return allowedMIME[normalizeMIME(mimeType)]
}

func IsAllowedExtension(filename string) bool {
	return allowedExt[strings.ToLower(filepath.Ext(filename))]
}

// ResolveMIME returns the declared MIME type of an upload, falling back to
// content sniffing when the client sent none or a generic binary type.
func ResolveMIME(declared string, data []byte) string {
	declared = normalizeMIME(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if len(data) == 0 {
		return declared
	}
	return normalizeMIME(mimetype.Detect(data).String())
}

func normalizeMIME(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(v)
	if err != nil {
		return strings.ToLower(v)
	}
	if mediaType == "image/jpg" {
		return "image/jpeg"
	}
	return mediaType
}
