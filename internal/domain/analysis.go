package domain

import (
	"context"
	"image"
	"io"
)

const MaxUploadSize int64 = 10 * 1024 * 1024

// AllowedExtensions is ordered so that error messages list it the same way every time.
var AllowedExtensions = []string{"png", "jpg", "jpeg", "gif", "bmp", "tiff"}

type Upload struct {
	Filename string
	File     io.ReadSeeker
}

type AnalysisInput struct {
	Upload         *Upload
	PatientHistory string
	ReferralNotes  string
}

type AnalysisRequest struct {
	Prompt string
	Image  image.Image
}

type AnalysisResult struct {
	AIAnalysis     string
	OriginalImage  []byte
	PatientHistory string
	ReferralNotes  string
}

type ImageAnalysisRepository interface {
	AnalyzeImage(ctx context.Context, req AnalysisRequest) (string, error)
}
