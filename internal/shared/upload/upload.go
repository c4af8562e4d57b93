package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// MaxFileSize caps uploads at 100 MB (podcast video episodes are the
// largest accepted media).
const MaxFileSize = 100 << 20

// File is an in-memory copy of a submitted media file.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Ext returns the file extension including the dot, lowercased.
func (f *File) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// FromForm reads an optional multipart file field. Returns (nil, nil) when
// the field is absent so callers can treat the file as optional.
func FromForm(c *gin.Context, field string) (*File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	return fromHeader(header)
}

func fromHeader(header *multipart.FileHeader) (*File, error) {
	if header.Size > MaxFileSize {
		return nil, fmt.Errorf("file %s exceeds the %d byte limit", header.Filename, MaxFileSize)
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	contentType := header.Header.Get("Content-Type")

	return &File{
		Name:        header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
