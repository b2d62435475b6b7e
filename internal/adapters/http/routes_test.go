package router

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/KianoushAmirpour/medical_image_analyzer/internal/adapters/http/handler"
	"github.com/KianoushAmirpour/medical_image_analyzer/internal/domain"
	"github.com/KianoushAmirpour/medical_image_analyzer/internal/usecase"
	"github.com/KianoushAmirpour/medical_image_analyzer/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	output string
	err    error
	calls  int
}

func (s *stubAnalyzer) AnalyzeImage(ctx context.Context, req domain.AnalysisRequest) (string, error) {
	s.calls++
	return s.output, s.err
}

func newTestRouter(ai domain.ImageAnalysisRepository, maxBody int64) *gin.Engine {
	log := logger.NewLoggerWithWriter(io.Discard)
	h := handler.NewAnalysisHandler(usecase.NewAnalysisService(ai, log), log)
	return SetupRoutes(RouterConfig{
		AnalysisHandler:      h,
		GinMode:              gin.TestMode,
		AllowedOrigins:       []string{"*"},
		MaxRequestBodyBytes:  maxBody,
		MultipartMemoryBytes: 8 << 20,
	})
}

func onePixelPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 12, G: 34, B: 56, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type formFile struct {
	field    string
	filename string
	data     []byte
}

func multipartRequest(t *testing.T, file *formFile, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if file != nil {
		part, err := w.CreateFormFile(file.field, file.filename)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestAnalyzeEndToEnd(t *testing.T) {
	data := onePixelPNG(t)
	ai := &stubAnalyzer{output: "OK"}
	g := newTestRouter(ai, 16<<20)

	rec := httptest.NewRecorder()
	g.ServeHTTP(rec, multipartRequest(t,
		&formFile{field: "medicalImage", filename: "pixel.png", data: data},
		map[string]string{"patientHistory": "test"}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]any{
		"success":        true,
		"aiAnalysis":     "OK",
		"imagePreview":   base64.StdEncoding.EncodeToString(data),
		"patientHistory": "test",
		"referralNotes":  "",
	}, decodeBody(t, rec))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Equal(t, 1, ai.calls)
}

func TestAnalyzeClientErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    *formFile
		status  int
		message string
	}{
		{
			name:    "no image field",
			file:    nil,
			status:  http.StatusBadRequest,
			message: "No image file provided",
		},
		{
			name:    "image under another field name",
			file:    &formFile{field: "image", filename: "pixel.png", data: []byte("x")},
			status:  http.StatusBadRequest,
			message: "No image file provided",
		},
		{
			name:    "unsupported extension",
			file:    &formFile{field: "medicalImage", filename: "report.pdf", data: []byte("%PDF-1.4")},
			status:  http.StatusBadRequest,
			message: "Invalid file type. Allowed: png, jpg, jpeg, gif, bmp, tiff",
		},
		{
			name:    "text renamed to png",
			file:    &formFile{field: "medicalImage", filename: "notes.png", data: []byte("hello world")},
			status:  http.StatusBadRequest,
			message: "Could not process image file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := &stubAnalyzer{output: "OK"}
			g := newTestRouter(ai, 16<<20)

			rec := httptest.NewRecorder()
			g.ServeHTTP(rec, multipartRequest(t, tt.file, map[string]string{"referralNotes": "n/a"}))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, map[string]any{"error": tt.message}, decodeBody(t, rec))
			assert.Zero(t, ai.calls)
		})
	}
}

func TestAnalyzeNotMultipart(t *testing.T) {
	g := newTestRouter(&stubAnalyzer{}, 16<<20)

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString(`{"medicalImage":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	g.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "No image file")
}

func TestAnalyzeEmptyFilename(t *testing.T) {
	ai := &stubAnalyzer{output: "OK"}
	g := newTestRouter(ai, 16<<20)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="medicalImage"; filename=""`)
	h.Set("Content-Type", "application/octet-stream")
	_, err := w.CreatePart(h)
	require.NoError(t, err)
	require.NoError(t, w.WriteField("patientHistory", "test"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	g.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": "No file selected"}, decodeBody(t, rec))
	assert.Zero(t, ai.calls)
}

func TestAnalyzeFileTooLargeForValidation(t *testing.T) {
	ai := &stubAnalyzer{output: "OK"}
	g := newTestRouter(ai, 16<<20)

	data := make([]byte, domain.MaxUploadSize+1)
	rec := httptest.NewRecorder()
	g.ServeHTTP(rec, multipartRequest(t, &formFile{field: "medicalImage", filename: "huge.png", data: data}, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": "File too large. Maximum size: 10MB"}, decodeBody(t, rec))
	assert.Zero(t, ai.calls)
}

func TestAnalyzePayloadTooLarge(t *testing.T) {
	ai := &stubAnalyzer{output: "OK"}
	g := newTestRouter(ai, 1024)

	rec := httptest.NewRecorder()
	g.ServeHTTP(rec, multipartRequest(t, &formFile{field: "medicalImage", filename: "big.png", data: make([]byte, 4096)}, nil))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, map[string]any{"error": "File too large"}, decodeBody(t, rec))
	assert.Zero(t, ai.calls)
}

func TestAnalyzeExternalFailure(t *testing.T) {
	ai := &stubAnalyzer{err: errors.New("rate limit exceeded")}
	g := newTestRouter(ai, 16<<20)

	rec := httptest.NewRecorder()
	g.ServeHTTP(rec, multipartRequest(t, &formFile{field: "medicalImage", filename: "pixel.png", data: onePixelPNG(t)}, nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{"error": "An error occurred during analysis: rate limit exceeded"}, decodeBody(t, rec))
}

func TestHomePage(t *testing.T) {
	g := newTestRouter(&stubAnalyzer{}, 16<<20)

	rec := httptest.NewRecorder()
	g.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="medicalImage"`)
	assert.Contains(t, rec.Body.String(), "png, jpg, jpeg, gif, bmp, tiff")

	rec = httptest.NewRecorder()
	g.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/script.js", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/analyze")
}

func TestHealthAndNotFound(t *testing.T) {
	g := newTestRouter(&stubAnalyzer{}, 16<<20)

	rec := httptest.NewRecorder()
	g.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, http.StatusOK, decodeBody(t, rec)["status"].(map[string]any)["status_code"])

	rec = httptest.NewRecorder()
	g.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"error": "not found"}, decodeBody(t, rec))
}

func TestRequestIDIsPropagated(t *testing.T) {
	g := newTestRouter(&stubAnalyzer{}, 16<<20)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	g.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
}
