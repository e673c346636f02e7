package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies pipeline failures. Fatal types abort the run;
// parse errors are recovered per cell and surfaced by the validator.
type ErrorType string

const (
	ErrTypeLoad             ErrorType = "LOAD"
	ErrTypeImputation       ErrorType = "IMPUTATION"
	ErrTypeParse            ErrorType = "PARSE"
	ErrTypeEmptyDataset     ErrorType = "EMPTY_DATASET"
	ErrTypeInsufficientData ErrorType = "INSUFFICIENT_DATA"
	ErrTypeExport           ErrorType = "EXPORT"
	ErrTypeConfig           ErrorType = "CONFIG"
)

// PipelineError represents a classified pipeline failure.
type PipelineError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with PipelineError
func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// Fatal reports whether the error type aborts the run. Parse errors
// are the only recovered type: the offending cell is nulled and the
// failure count travels with the dataset diagnostics.
func (e *PipelineError) Fatal() bool {
	return e.Type != ErrTypeParse
}

// New creates a new classified pipeline error
func New(errType ErrorType, message string, cause error) *PipelineError {
	return &PipelineError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Helper constructors for the pipeline taxonomy

// NewLoadError reports a missing, unreadable or malformed source file.
func NewLoadError(message string, cause error) *PipelineError {
	return New(ErrTypeLoad, message, cause)
}

// NewImputationError reports that no mode exists for a categorical
// column (all values null).
func NewImputationError(message string) *PipelineError {
	return New(ErrTypeImputation, message, nil)
}

// NewParseError reports one unparseable numeric cell.
func NewParseError(column string, row int, raw string) *PipelineError {
	return New(ErrTypeParse, fmt.Sprintf("column %s row %d: cannot parse %q", column, row, raw), nil)
}

// NewEmptyDatasetError reports statistics requested over zero rows.
func NewEmptyDatasetError(message string) *PipelineError {
	return New(ErrTypeEmptyDataset, message, nil)
}

// NewInsufficientDataError reports a degenerate regression input.
func NewInsufficientDataError(message string) *PipelineError {
	return New(ErrTypeInsufficientData, message, nil)
}

// NewExportError reports a failure writing an output artifact.
func NewExportError(message string, cause error) *PipelineError {
	return New(ErrTypeExport, message, cause)
}

// IsType reports whether err (or anything it wraps) is a pipeline
// error of the given type.
func IsType(err error, errType ErrorType) bool {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Type == errType
	}
	return false
}
