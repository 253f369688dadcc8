// Package media turns an uploaded image into a URI that can be stored on a
// menu item, the hero or the gallery.
package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxBytes caps uploads when no limit is configured.
const DefaultMaxBytes = 10 << 20

var (
	ErrTooLarge = errors.New("image exceeds the upload size limit")
	ErrNotImage = errors.New("file is not an image")
	ErrEmpty    = errors.New("file is empty")
)

// Ingestor stores an image and returns the URI to reference it by.
type Ingestor interface {
	Ingest(ctx context.Context, filename string, r io.Reader) (string, error)
}

// readImage reads at most maxBytes from r and checks the content is an image.
func readImage(r io.Reader, maxBytes int64) ([]byte, *mimetype.MIME, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, nil, err
	}
	if len(data) == 0 {
		return nil, nil, ErrEmpty
	}
	if int64(len(data)) > maxBytes {
		return nil, nil, ErrTooLarge
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, nil, fmt.Errorf("%w (detected %s)", ErrNotImage, mt.String())
	}
	return data, mt, nil
}

// DataURI inlines the image as a base64 data URI.
type DataURI struct {
	MaxBytes int64
}

func (d DataURI) Ingest(_ context.Context, _ string, r io.Reader) (string, error) {
	data, mt, err := readImage(r, d.MaxBytes)
	if err != nil {
		return "", err
	}
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Cloudinary uploads the image and returns its secure URL.
type Cloudinary struct {
	cld      *cloudinary.Cloudinary
	Folder   string
	MaxBytes int64
}

func NewCloudinary(cloudURL, folder string, maxBytes int64) (*Cloudinary, error) {
	if cloudURL == "" {
		return nil, errors.New("cloudinary url is empty")
	}
	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &Cloudinary{cld: cld, Folder: folder, MaxBytes: maxBytes}, nil
}

func (c *Cloudinary) Ingest(ctx context.Context, _ string, r io.Reader) (string, error) {
	data, _, err := readImage(r, c.MaxBytes)
	if err != nil {
		return "", err
	}
	res, err := c.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{Folder: c.Folder})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	return res.SecureURL, nil
}
