package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimePDF  = "application/pdf"
)

var allowedExtensions = map[string]string{
	".docx": mimeDocx,
	".pdf":  mimePDF,
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// StorageService writes uploaded resume files to durable disk storage and
// hands back both the on-disk path and the public URL they are served under.
type StorageService interface {
	SaveResume(file *multipart.FileHeader, ownerID string) (*StoredFile, error)
	DeleteFile(path string) error
	EnsureUploadDir() error
}

type StoredFile struct {
	Path      string
	URL       string
	MimeType  string
	SavedAt   time.Time
	Original  string
}

type storageService struct {
	uploadPath string
	publicBase string
	maxSize    int64
}

func NewStorageService(uploadPath string, maxSize int64) StorageService {
	return &storageService{
		uploadPath: uploadPath,
		publicBase: "/uploads/resumes",
		maxSize:    maxSize,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

// SaveResume implements StorageService. Only document formats on the
// allow-list are accepted, and the write completes before the caller gets a
// response.
func (s *storageService) SaveResume(file *multipart.FileHeader, ownerID string) (*StoredFile, error) {
	if file.Size > s.maxSize {
		return nil, fmt.Errorf("file too large: max %d bytes", s.maxSize)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	mimeType, ok := allowedExtensions[ext]
	if !ok {
		return nil, fmt.Errorf("invalid file extension: %s (only .docx and .pdf are allowed)", ext)
	}

	now := time.Now()
	base := strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
	base = whitespacePattern.ReplaceAllString(base, "_")
	filename := fmt.Sprintf("%s_%d_%s%s", ownerID, now.Unix(), base, ext)
	filePath := filepath.Join(s.uploadPath, filename)

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &StoredFile{
		Path:     filePath,
		URL:      s.publicBase + "/" + filename,
		MimeType: mimeType,
		SavedAt:  now,
		Original: file.Filename,
	}, nil
}

func (s *storageService) DeleteFile(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
