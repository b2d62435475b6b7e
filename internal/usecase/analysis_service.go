package usecase

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/KianoushAmirpour/medical_image_analyzer/internal/domain"
	"github.com/KianoushAmirpour/medical_image_analyzer/internal/observability"
)

type AnalysisService struct {
	AI     domain.ImageAnalysisRepository
	Logger domain.LoggingRepository
}

func NewAnalysisService(ai domain.ImageAnalysisRepository, logger domain.LoggingRepository) *AnalysisService {
	return &AnalysisService{AI: ai, Logger: logger}
}

// Analyze runs validate, decode, prompt and inference for one upload. Every failure is
// returned as a *domain.DomainError.
func (s *AnalysisService) Analyze(ctx context.Context, in domain.AnalysisInput) (*domain.AnalysisResult, error) {
	log := s.Logger.With(
		"service.name", "medical_image_analyzer",
		"http.request.id", observability.GetRequestID(ctx),
		"event.category", []string{"process"})

	history := strings.TrimSpace(in.PatientHistory)
	referralNotes := strings.TrimSpace(in.ReferralNotes)

	if err := ValidateUpload(in.Upload); err != nil {
		log.Warn(
			"upload rejected",
			"event.action", "validate_upload",
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}

	data, err := io.ReadAll(in.Upload.File)
	if err != nil {
		log.Error(
			"failed to read upload",
			"event.action", "read_upload",
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, domain.NewDomainError(domain.ErrCodeInternal, "failed to read uploaded file", err)
	}

	decoded, err := DecodeImage(data)
	if err != nil {
		log.Warn(
			"failed to decode image",
			"event.action", "decode_image",
			"event.outcome", "failed",
			"file.name", in.Upload.Filename,
			"error.message", err.Error())
		return nil, err
	}

	log.Info(
		"image analysis started",
		"event.type", []string{"start"},
		"file.name", in.Upload.Filename,
		"file.size", len(data),
		"image.format", decoded.Format,
		"image.width", decoded.Image.Bounds().Dx(),
		"image.height", decoded.Image.Bounds().Dy())

	req := domain.AnalysisRequest{
		Prompt: BuildPrompt(history, referralNotes),
		Image:  decoded.Image,
	}

	aiStartTime := time.Now()
	output, err := s.AI.AnalyzeImage(ctx, req)
	aiDurationTime := time.Since(aiStartTime)
	if err != nil {
		log.Error(
			"failed to analyze image by ai service",
			"event.action", "analyze_image_by_ai",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error(),
			"event.duration", aiDurationTime.Nanoseconds())
		if domain.IsCode(err, domain.ErrCodeAnalysisFailed) {
			return nil, err
		}
		return nil, domain.NewAnalysisFailedError(err)
	}

	log.Info(
		"image analyzed successfully",
		"event.type", []string{"end"},
		"event.outcome", "success",
		"event.duration", aiDurationTime.Nanoseconds())

	return &domain.AnalysisResult{
		AIAnalysis:     output,
		OriginalImage:  data,
		PatientHistory: history,
		ReferralNotes:  referralNotes,
	}, nil
}
