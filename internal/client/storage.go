package client

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UploadURLPrefix is the public path under which locally stored files are served
const UploadURLPrefix = "/uploads/"

// StoredFile describes a file held by a FileStorage
type StoredFile struct {
	URL     string
	ModTime time.Time
}

// FileStorage stores uploaded attachment bytes
type FileStorage interface {
	// Save writes r under name and returns its public URL and byte size
	Save(ctx context.Context, name string, r io.Reader, contentType string) (url string, size int64, err error)
	// Delete removes the file behind url. A missing file is not an error.
	Delete(ctx context.Context, url string) error
	// List returns every stored file
	List(ctx context.Context) ([]StoredFile, error)
}

// GenerateFileName returns "<unix millis>-<16 hex chars><ext of original>"
func GenerateFileName(original string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, filepath.Ext(original))
}

// nameFromURL extracts the stored file name from a URL produced by Save.
// Only the last path element is used so a crafted URL cannot escape the storage root.
func nameFromURL(url, prefix string) (string, bool) {
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	name := filepath.Base(strings.TrimPrefix(url, prefix))
	if name == "." || name == "/" || name == ".." || name == "" {
		return "", false
	}
	return name, true
}
