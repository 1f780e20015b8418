package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
)

func TestIsAllowedImage(t *testing.T) {
	tests := []struct {
		mime string
		want bool
	}{
		{"image/jpeg", true},
		{"image/png", true},
		{"image/webp", true},
		{"IMAGE/PNG", true},
		{"image/jpg", true},
		{"image/png; charset=binary", true},
		{"image/gif", false},
		{"application/pdf", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAllowedImage(tt.mime))
		})
	}
}

func TestIsAllowedExtension(t *testing.T) {
	assert.True(t, IsAllowedExtension("menu.JPG"))
	assert.True(t, IsAllowedExtension("menu.jpeg"))
	assert.True(t, IsAllowedExtension("menu.webp"))
	assert.True(t, IsAllowedExtension("dir/menu.png"))
	assert.False(t, IsAllowedExtension("menu.pdf"))
	assert.False(t, IsAllowedExtension("menu"))
}

func TestResolveMIME(t *testing.T) {
	assert.Equal(t, "image/webp", ResolveMIME("image/webp", pngHeader))
	assert.Equal(t, "image/png", ResolveMIME("", pngHeader))
	assert.Equal(t, "image/png", ResolveMIME("application/octet-stream", pngHeader))
	assert.Equal(t, "image/jpeg", ResolveMIME("", jpegHeader))
	assert.Equal(t, "", ResolveMIME("", nil))
}
