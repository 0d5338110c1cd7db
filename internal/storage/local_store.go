package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	DirAttachments = "message_attachments"
	DirPostImages  = "post_images"
	DirAvatars     = "avatars"
)

var (
	ErrFileTooLarge = errors.New("file exceeds the upload limit")
	ErrEmptyFile    = errors.New("file is empty")
	ErrInvalidPath  = errors.New("invalid storage path")
)

// Upload is a file received from a client, not yet stored.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// FromFileHeader adapts a multipart form file.
func FromFileHeader(fh *multipart.FileHeader) Upload {
	return Upload{
		FileName:    filepath.Base(fh.Filename),
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// StoredFile describes an upload after it has been written.
type StoredFile struct {
	Path        string
	FileName    string
	ContentType string
	Size        int64
}

type FileStore interface {
	Save(dir string, upload Upload) (*StoredFile, error)
	Remove(path string) error
}

// LocalStore writes uploads below Root using uuid file names so that client
// names never reach the filesystem.
type LocalStore struct {
	Root     string
	MaxBytes int64
}

func NewLocalStore(root string, maxBytes int64) *LocalStore {
	return &LocalStore{Root: root, MaxBytes: maxBytes}
}

// Save copies the upload to Root/dir and returns the path relative to Root.
func (s *LocalStore) Save(dir string, upload Upload) (*StoredFile, error) {
	if s.MaxBytes > 0 && upload.Size > s.MaxBytes {
		return nil, ErrFileTooLarge
	}
	if upload.Open == nil {
		return nil, ErrEmptyFile
	}

	src, err := upload.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	target := filepath.Join(s.Root, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(upload.FileName))
	relPath := filepath.ToSlash(filepath.Join(dir, name))

	dst, err := os.Create(filepath.Join(target, name))
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}

	reader := io.Reader(src)
	if s.MaxBytes > 0 {
		reader = io.LimitReader(src, s.MaxBytes+1)
	}

	written, err := io.Copy(dst, reader)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && s.MaxBytes > 0 && written > s.MaxBytes {
		err = ErrFileTooLarge
	}
	if err != nil {
		_ = os.Remove(filepath.Join(target, name))
		if errors.Is(err, ErrFileTooLarge) {
			return nil, err
		}
		return nil, fmt.Errorf("write file: %w", err)
	}

	return &StoredFile{
		Path:        relPath,
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
		Size:        written,
	}, nil
}

// Remove deletes a stored file. Missing files are not an error.
func (s *LocalStore) Remove(path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

func (s *LocalStore) resolve(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", ErrInvalidPath
	}
	return filepath.Join(s.Root, clean), nil
}
