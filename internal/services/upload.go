package services

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/pkg/response"
	"github.com/google/uuid"
)

// maxUploadSize caps image uploads at 5 MB.
const maxUploadSize = 5 << 20

// allowedImageTypes maps accepted content types (as sniffed from the file
// bytes, not the client-supplied header) to their stored extension.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type UploadService struct {
	cfg *config.UploadConfig
}

func NewUploadService(cfg *config.UploadConfig) *UploadService {
	return &UploadService{cfg: cfg}
}

// SaveImage validates and stores an uploaded image, returning its public URL.
// The file is sniffed for its real content type; the filename is a random
// UUID so client names never reach the filesystem.
func (s *UploadService) SaveImage(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadSize {
		return "", response.NewBadRequest("image exceeds the 5MB size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	contentType, err := sniffContentType(file)
	if err != nil {
		return "", err
	}

	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", response.NewBadRequest("image must be JPEG, PNG or WEBP")
	}

	if err := os.MkdirAll(s.cfg.Dir, 0755); err != nil {
		return "", err
	}

	filename := uuid.New().String() + ext
	dstPath := filepath.Join(s.cfg.Dir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := file.Seek(0, 0); err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dstPath)
		return "", err
	}

	return strings.TrimSuffix(s.cfg.BaseURL, "/") + "/" + filename, nil
}

// sniffContentType reads the first 512 bytes and detects the real type.
func sniffContentType(file multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

// Delete removes a previously stored image by its public URL. URLs outside
// the upload prefix are ignored.
func (s *UploadService) Delete(publicURL string) error {
	prefix := strings.TrimSuffix(s.cfg.BaseURL, "/") + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return nil
	}

	filename := filepath.Base(strings.TrimPrefix(publicURL, prefix))
	return os.Remove(filepath.Join(s.cfg.Dir, filename))
}
