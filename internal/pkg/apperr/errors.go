package apperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInternalError     = "INTERNAL_ERROR"
	CodeDatasetLoadFailed = "DATASET_LOAD_FAILED"
	CodeDatasetInvalid    = "DATASET_INVALID"
	CodeStaleSession      = "STALE_SESSION"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")

	// ErrLoadFailed is returned when the trajectory dataset could not be fetched.
	ErrLoadFailed = New(fiber.StatusBadGateway, CodeDatasetLoadFailed, "failed to load trajectory dataset: check the network connection or the dataset location")

	// ErrInvalidDataset is returned when the fetched dataset does not describe a valid scene.
	ErrInvalidDataset = New(fiber.StatusBadGateway, CodeDatasetInvalid, "trajectory dataset is malformed")

	// ErrStaleSession is returned when a newer request from the same viewer superseded this one.
	ErrStaleSession = New(fiber.StatusConflict, CodeStaleSession, "request superseded by a newer request from the same viewer")
)

type Extras map[string]any

type AppError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e AppError) Msg(format string, parts ...any) *AppError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e AppError) WithExtras(extras Extras) *AppError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations any) *AppError {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
