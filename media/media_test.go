package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

// 1x1 transparent PNG
var pixel, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")

func TestDataURI(t *testing.T) {
	uri, err := DataURI{}.Ingest(context.Background(), "pixel.png", bytes.NewReader(pixel))
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("uri = %.40s", uri)
	}
	encoded := strings.TrimPrefix(uri, "data:image/png;base64,")
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || !bytes.Equal(decoded, pixel) {
		t.Fatal("payload does not round-trip")
	}
}

func TestDataURIRejects(t *testing.T) {
	tests := []struct {
		name string
		max  int64
		body []byte
		want error
	}{
		{"empty", 0, nil, ErrEmpty},
		{"text", 0, []byte("hello, this is plainly not an image"), ErrNotImage},
		{"too large", 10, pixel, ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DataURI{MaxBytes: tt.max}.Ingest(context.Background(), "f", bytes.NewReader(tt.body))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewCloudinaryRequiresURL(t *testing.T) {
	if _, err := NewCloudinary("", "menu", 0); err == nil {
		t.Fatal("expected error for empty url")
	}
}
