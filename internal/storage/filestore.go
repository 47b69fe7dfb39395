package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind selects one of the upload directories.
type Kind string

const (
	KindLogo    Kind = "logos"
	KindProof   Kind = "proofs"
	KindReceipt Kind = "receipts"
)

var prefixes = map[Kind]string{
	KindLogo:    "LOGO",
	KindProof:   "PROOF",
	KindReceipt: "RECEIPT",
}

// AllowedExtensions is the image allow-list for every upload kind.
var AllowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

var (
	ErrFileType     = errors.New("file type not allowed, use png, jpg, jpeg, gif or webp")
	ErrFileTooLarge = errors.New("file is too large")
	ErrUnknownKind  = errors.New("unknown upload directory")
)

// FileStore keeps uploaded images on the local filesystem under Root/<kind>/.
type FileStore struct {
	root    string
	maxSize int64
	now     func() time.Time
}

// NewFileStore creates the upload directories when missing.
func NewFileStore(root string, maxSize int64) (*FileStore, error) {
	for kind := range prefixes {
		if err := os.MkdirAll(filepath.Join(root, string(kind)), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir %s: %w", kind, err)
		}
	}
	return &FileStore{root: root, maxSize: maxSize, now: time.Now}, nil
}

func (s *FileStore) Root() string {
	return s.root
}

// Extension returns the lower-case extension without the dot, or "".
func Extension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

// IsAllowed reports whether the filename carries an allow-listed image extension.
func IsAllowed(filename string) bool {
	return AllowedExtensions[Extension(filename)]
}

// Save copies an uploaded file into the kind's directory under a generated name and returns that name.
func (s *FileStore) Save(kind Kind, fh *multipart.FileHeader) (string, error) {
	prefix, ok := prefixes[kind]
	if !ok {
		return "", ErrUnknownKind
	}
	if fh == nil || !IsAllowed(fh.Filename) {
		return "", ErrFileType
	}
	if s.maxSize > 0 && fh.Size > s.maxSize {
		return "", ErrFileTooLarge
	}

	name := fmt.Sprintf("%s_%s_%s.%s",
		prefix,
		s.now().In(time.FixedZone("WIB", 7*60*60)).Format("20060102_150405"),
		uuid.NewString()[:8],
		Extension(fh.Filename),
	)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(s.Path(kind, name), os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(s.Path(kind, name))
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(s.Path(kind, name))
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	return name, nil
}

// Remove deletes a stored file. Callers treat failures as non-fatal.
func (s *FileStore) Remove(kind Kind, name string) error {
	if name == "" {
		return nil
	}
	return os.Remove(s.Path(kind, name))
}

// Path joins the stored name onto the kind's directory. Directory components in name are dropped.
func (s *FileStore) Path(kind Kind, name string) string {
	return filepath.Join(s.root, string(kind), filepath.Base(name))
}
