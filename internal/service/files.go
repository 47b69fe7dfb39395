package service

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/Maspur102/elokalfa/internal/storage"
)

// FileStorage is the subset of storage.FileStore the services use.
type FileStorage interface {
	Save(kind storage.Kind, fh *multipart.FileHeader) (string, error)
	Remove(kind storage.Kind, name string) error
}

// saveUpload stores an optional image upload. A nil header stores nothing and returns nil.
func saveUpload(files FileStorage, kind storage.Kind, fh *multipart.FileHeader) (*string, error) {
	if fh == nil {
		return nil, nil
	}
	name, err := files.Save(kind, fh)
	switch {
	case errors.Is(err, storage.ErrFileType):
		return nil, ErrFileType
	case errors.Is(err, storage.ErrFileTooLarge):
		return nil, validationError(err.Error())
	case err != nil:
		return nil, fmt.Errorf("save %s upload: %w", kind, err)
	}
	return &name, nil
}

// removeQuietly deletes a stored file; failures are logged and otherwise ignored.
func removeQuietly(files FileStorage, kind storage.Kind, name *string) {
	if name == nil || *name == "" {
		return
	}
	if err := files.Remove(kind, *name); err != nil {
		log.Printf("Warning: failed to remove %s/%s: %v", kind, *name, err)
	}
}
