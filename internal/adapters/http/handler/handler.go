package handler

import (
	"encoding/base64"
	"errors"
	"net/http"
	"runtime"
	"strings"

	"github.com/KianoushAmirpour/medical_image_analyzer/internal/adapters/http/dto"
	"github.com/KianoushAmirpour/medical_image_analyzer/internal/domain"
	"github.com/KianoushAmirpour/medical_image_analyzer/internal/usecase"
	"github.com/gin-gonic/gin"
)

const (
	medicalImageField   = "medicalImage"
	patientHistoryField = "patientHistory"
	referralNotesField  = "referralNotes"
)

type AnalysisHandler struct {
	AnalysisSvc *usecase.AnalysisService
	Logger      domain.LoggingRepository
}

func NewAnalysisHandler(analysissvc *usecase.AnalysisService, logger domain.LoggingRepository) *AnalysisHandler {
	return &AnalysisHandler{AnalysisSvc: analysissvc, Logger: logger}
}

func (h *AnalysisHandler) HomePageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"AllowedExtensions": domain.AllowedExtensions,
		"MaxUploadMB":       domain.MaxUploadSize / 1024 / 1024,
	})
}

// AnalyzeHandler godoc
// @Summary      Analyze a medical image
// @Description  Validates the uploaded image, sends it with the patient context to the generative model and returns the model's analysis.
// @Tags         analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        medicalImage    formData  file    true   "png, jpg, jpeg, gif, bmp or tiff, at most 10MB"
// @Param        patientHistory  formData  string  false  "free-text patient history"
// @Param        referralNotes   formData  string  false  "free-text referral notes"
// @Success      200  {object}  dto.AnalysisResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /analyze [post]
func (h *AnalysisHandler) AnalyzeHandler(c *gin.Context) {

	fileHeader, err := c.FormFile(medicalImageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) && emptyFilePart(c.Request) {
			h.abortWithErr(c, domain.ErrNoFileSelected)
			return
		}
		h.abortWithErr(c, mapFormFileErr(err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.abortWithErr(c, domain.NewDomainError(domain.ErrCodeInternal, "failed to open uploaded file", err))
		return
	}
	defer file.Close()

	in := domain.AnalysisInput{
		Upload:         &domain.Upload{Filename: fileHeader.Filename, File: file},
		PatientHistory: c.PostForm(patientHistoryField),
		ReferralNotes:  c.PostForm(referralNotesField),
	}

	res, err := h.AnalysisSvc.Analyze(c.Request.Context(), in)
	if err != nil {
		h.abortWithErr(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AnalysisResponse{
		Success:        true,
		AIAnalysis:     res.AIAnalysis,
		ImagePreview:   base64.StdEncoding.EncodeToString(res.OriginalImage),
		PatientHistory: res.PatientHistory,
		ReferralNotes:  res.ReferralNotes,
	})
}

func (h *AnalysisHandler) HealthHandler(c *gin.Context) {

	var memStat runtime.MemStats
	runtime.ReadMemStats(&memStat)

	var resp dto.HealthResponse
	resp.Status.StatusCode = http.StatusOK
	resp.Memory.AllocMB = memStat.Alloc / 1024 / 1024
	resp.Memory.TotalAllocMB = memStat.TotalAlloc / 1024 / 1024
	resp.Memory.SysMB = memStat.Sys / 1024 / 1024
	resp.Memory.NumGC = memStat.NumGC
	resp.Memory.NumGoroutine = runtime.NumGoroutine()

	c.JSON(http.StatusOK, resp)
}

func (h *AnalysisHandler) NotFoundHandler(c *gin.Context) {
	h.abortWithErr(c, domain.NewDomainError(domain.ErrCodeNotFound, "not found", nil))
}

func (h *AnalysisHandler) abortWithErr(c *gin.Context, err error) {
	httpErr := dto.MapErr(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		h.Logger.Error("http_request_failed", "request_id", c.GetString("RequestID"), "status", httpErr.StatusCode, "reason", err.Error())
	}
	c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
}

// emptyFilePart reports whether the file field was sent with an empty filename,
// which the multipart reader files under form values instead of files.
func emptyFilePart(r *http.Request) bool {
	return r.MultipartForm != nil && len(r.MultipartForm.Value[medicalImageField]) > 0
}

// mapFormFileErr treats every way of not getting a file part as a missing file,
// except a body that ran past the transport limit.
func mapFormFileErr(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) || strings.Contains(err.Error(), "request body too large") {
		return domain.ErrPayloadTooLarge
	}
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return domain.ErrNoImageProvided
	}
	return domain.NewDomainError(domain.ErrCodeMissingFile, domain.ErrNoImageProvided.Message, err)
}
