package dto

import "net/http"

// Error code constants
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeBusinessRule is used for generic business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:         http.StatusInternalServerError,
	ErrCodeValidation:       http.StatusBadRequest,
	ErrCodeValidationFormat: http.StatusBadRequest,
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeAlreadyExists:    http.StatusConflict,
	ErrCodeBusinessRule:     http.StatusUnprocessableEntity,
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeInvalidInput:     http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainErrorCodeMapping maps domain error codes to API error codes
var domainErrorCodeMapping = map[string]string{
	"NOT_FOUND":                ErrCodeNotFound,
	"ALREADY_EXISTS":           ErrCodeAlreadyExists,
	"INVALID_INPUT":            ErrCodeInvalidInput,
	"INVALID_DATE_FORMAT":      ErrCodeValidationFormat,
	"INVALID_STATUS_FLAG":      ErrCodeInvalidInput,
	"INVALID_NAME":             ErrCodeInvalidInput,
	"INVALID_CREDIT":           ErrCodeInvalidInput,
	"INVALID_DEBIT":            ErrCodeInvalidInput,
	"INVALID_AMOUNT":           ErrCodeInvalidInput,
	"INVALID_ITEM":             ErrCodeInvalidInput,
	"INVALID_QUANTITY":         ErrCodeInvalidInput,
	"INVALID_RATE":             ErrCodeInvalidInput,
	"INVALID_DISCOUNT":         ErrCodeInvalidInput,
	"INVALID_ORDER_NUMBER":     ErrCodeInvalidInput,
	"INVALID_CLIENT":           ErrCodeInvalidInput,
	"MISSING_CLIENT_ID":        ErrCodeBusinessRule,
	"ORDER_MISMATCH":           ErrCodeBusinessRule,
	"CURRENCY_MISMATCH":        ErrCodeBusinessRule,
	"UNKNOWN_TRANSACTION_TYPE": ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the API format.
// Unknown codes are returned as-is.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := domainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return code
}
