package dto

import (
	"errors"
	"net/http"

	"github.com/KianoushAmirpour/medical_image_analyzer/internal/domain"
)

// HttpError is rendered to the client as {"error": Message}.
type HttpError struct {
	Message    string `json:"error"`
	Code       string `json:"-"`
	StatusCode int    `json:"-"`
}

func (e *HttpError) Error() string {
	return e.Message
}

func MapErr(err error) HttpError {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return MapDomainErrToHttpErr(de)
	}
	return HttpError{
		Message:    "internal server error",
		Code:       domain.ErrCodeInternal,
		StatusCode: http.StatusInternalServerError,
	}
}

func MapDomainErrToHttpErr(err *domain.DomainError) HttpError {
	switch err.Code {
	case domain.ErrCodeMissingFile, domain.ErrCodeUnsupportedType, domain.ErrCodeTooLarge, domain.ErrCodeDecodeFailure:
		return HttpError{
			Message:    err.Message,
			Code:       err.Code,
			StatusCode: http.StatusBadRequest,
		}
	case domain.ErrCodePayloadTooLarge:
		return HttpError{
			Message:    err.Message,
			Code:       err.Code,
			StatusCode: http.StatusRequestEntityTooLarge,
		}
	case domain.ErrCodeNotFound:
		return HttpError{
			Message:    err.Message,
			Code:       err.Code,
			StatusCode: http.StatusNotFound,
		}
	case domain.ErrCodeAnalysisFailed:
		return HttpError{
			Message:    err.Message,
			Code:       err.Code,
			StatusCode: http.StatusInternalServerError,
		}
	default:
		return HttpError{
			Message:    err.Message,
			Code:       err.Code,
			StatusCode: http.StatusInternalServerError,
		}
	}

}
