package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// formField is one part of a multipart request body. Exactly one of value or
// filePath is used: filePath != "" makes it a file part. File parts with an
// empty path are skipped, which is how "keep the existing picture" is
// expressed on update.
type formField struct {
	name     string
	value    string
	filePath string
}

func encodeMultipart(fields []formField) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if f.filePath != "" {
			if err := writeFilePart(w, f.name, f.filePath); err != nil {
				return nil, "", err
			}
			continue
		}
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("writing field %s: %w", f.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func writeFilePart(w *multipart.Writer, field, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("creating file part %s: %w", field, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copying %s: %w", path, err)
	}
	return nil
}
