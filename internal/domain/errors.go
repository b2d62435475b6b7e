package domain

import (
	"errors"
	"fmt"
)

const (
	ErrCodeMissingFile     string = "MISSING_FILE"
	ErrCodeUnsupportedType string = "UNSUPPORTED_TYPE"
	ErrCodeTooLarge        string = "TOO_LARGE"
	ErrCodeDecodeFailure   string = "DECODE_FAILURE"
	ErrCodeAnalysisFailed  string = "ANALYSIS_FAILED"
	ErrCodePayloadTooLarge string = "PAYLOAD_TOO_LARGE"
	ErrCodeNotFound        string = "NOT_FOUND"
	ErrCodeInternal        string = "INTERNAL_ERROR"
)

type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"cause"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Message:%s, Cause:%v", e.Message, e.Cause)
	}
	return fmt.Sprintf("Message:%s", e.Message)

}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

func NewDomainError(code, msg string, cause error) *DomainError {
	return &DomainError{Code: code, Message: msg, Cause: cause}
}

var ErrNoImageProvided = &DomainError{Code: ErrCodeMissingFile, Message: "No image file provided", Cause: nil}
var ErrNoFileSelected = &DomainError{Code: ErrCodeMissingFile, Message: "No file selected", Cause: nil}
var ErrFileTooLarge = &DomainError{Code: ErrCodeTooLarge, Message: "File too large. Maximum size: 10MB", Cause: nil}
var ErrCouldNotProcessImage = &DomainError{Code: ErrCodeDecodeFailure, Message: "Could not process image file", Cause: nil}
var ErrPayloadTooLarge = &DomainError{Code: ErrCodePayloadTooLarge, Message: "File too large", Cause: nil}

// IsCode reports whether err carries a DomainError with the given code.
func IsCode(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// NewAnalysisFailedError wraps a failure of the inference call into the message shown to the client.
func NewAnalysisFailedError(cause error) *DomainError {
	return NewDomainError(ErrCodeAnalysisFailed, fmt.Sprintf("An error occurred during analysis: %s", cause.Error()), cause)
}
