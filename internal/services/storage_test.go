package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("resume_file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["resume_file"][0]
}

func TestSaveResume(t *testing.T) {
	newService := func(t *testing.T, maxSize int64) StorageService {
		t.Helper()
		s := NewStorageService(t.TempDir(), maxSize)
		require.NoError(t, s.EnsureUploadDir())
		return s
	}

	t.Run("accepts a pdf and writes it to disk", func(t *testing.T) {
		s := newService(t, 1024)

		stored, err := s.SaveResume(fileHeader(t, "resume.pdf", []byte("%PDF-1.4 test")), "owner-1")

		require.NoError(t, err)
		assert.Equal(t, "application/pdf", stored.MimeType)
		assert.Equal(t, "resume.pdf", stored.Original)
		assert.True(t, strings.HasPrefix(stored.URL, "/uploads/resumes/owner-1_"))

		data, err := os.ReadFile(stored.Path)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4 test"), data)
	})

	t.Run("accepts a docx", func(t *testing.T) {
		s := newService(t, 1024)

		stored, err := s.SaveResume(fileHeader(t, "My Resume.docx", []byte("PK")), "owner-2")

		require.NoError(t, err)
		assert.Equal(t, mimeDocx, stored.MimeType)
		// whitespace in the original name is collapsed to underscores
		assert.Contains(t, stored.Path, "My_Resume.docx")
	})

	t.Run("rejects other extensions", func(t *testing.T) {
		s := newService(t, 1024)

		_, err := s.SaveResume(fileHeader(t, "malware.exe", []byte("MZ")), "owner-3")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid file extension")
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		s := newService(t, 4)

		_, err := s.SaveResume(fileHeader(t, "resume.pdf", []byte("well over four bytes")), "owner-4")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "file too large")
	})
}
