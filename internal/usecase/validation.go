package usecase

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/KianoushAmirpour/medical_image_analyzer/internal/domain"
)

// ValidateUpload checks presence, extension and size of an upload, in that order.
// The stream is always rewound to its start once the size has been measured.
func ValidateUpload(upload *domain.Upload) error {
	if upload == nil || upload.File == nil || upload.Filename == "" {
		return domain.ErrNoFileSelected
	}

	ext := FileExtension(upload.Filename)
	if !slices.Contains(domain.AllowedExtensions, ext) {
		return domain.NewDomainError(
			domain.ErrCodeUnsupportedType,
			fmt.Sprintf("Invalid file type. Allowed: %s", strings.Join(domain.AllowedExtensions, ", ")),
			nil)
	}

	size, err := measureSize(upload.File)
	if err != nil {
		return domain.NewDomainError(domain.ErrCodeInternal, "failed to read uploaded file", err)
	}

	if size > domain.MaxUploadSize {
		return domain.ErrFileTooLarge
	}

	return nil
}

// FileExtension returns the lower-cased text after the last dot, or "" when there is none.
func FileExtension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

func measureSize(f io.Seeker) (int64, error) {
	size, err := f.Seek(0, io.SeekEnd)
	if _, rewindErr := f.Seek(0, io.SeekStart); rewindErr != nil && err == nil {
		err = rewindErr
	}
	return size, err
}
