package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"menuparser/internal/menu"
)

var (
	ErrBusy           = errors.New("upload already in progress")
	ErrNoAcceptedFile = errors.New("no accepted image file")
)

// File is one candidate upload as handed over by a drop or a file picker.
type File struct {
	Name     string
	MIMEType string
	Data     []byte
}

func (f File) Reader() io.Reader {
	return bytes.NewReader(f.Data)
}

// Accepted reports whether the widget takes this file: a JPEG, PNG or WebP
// MIME type, or one of their extensions.
func (f File) Accepted() bool {
	return menu.IsAllowedImage(f.MIMEType) || menu.IsAllowedExtension(f.Name)
}

// ReadFile loads a file from disk, taking the MIME type from its extension
// and falling back to content sniffing.
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	return File{
		Name:     filepath.Base(path),
		MIMEType: menu.ResolveMIME(mimeType, data),
		Data:     data,
	}, nil
}

type UploadFunc func(ctx context.Context, f File) error

// Widget filters dropped files and hands at most one to the upload callback.
type Widget struct {
	upload    UploadFunc
	uploading func() bool
}

// NewWidget wires the widget to an upload callback. uploading reports
// whether an upload is in flight; while it is, drops are refused.
func NewWidget(upload UploadFunc, uploading func() bool) *Widget {
	return &Widget{upload: upload, uploading: uploading}
}

// Drop invokes the upload callback exactly once with the first accepted
// file. The remaining files are discarded.
func (w *Widget) Drop(ctx context.Context, files []File) error {
	if w.uploading != nil && w.uploading() {
		return ErrBusy
	}

	for _, f := range files {
		if f.Accepted() {
			return w.upload(ctx, f)
		}
	}

	if len(files) == 0 {
		return ErrNoAcceptedFile
	}
	return fmt.Errorf("%w: %s", ErrNoAcceptedFile, files[0].Name)
}
