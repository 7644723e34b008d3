package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound               = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists          = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput           = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidDateFormat      = NewDomainError("INVALID_DATE_FORMAT", "Date is not in DD-MM-YYYY format")
	ErrInvalidStatusFlag      = NewDomainError("INVALID_STATUS_FLAG", "Unknown order status flag")
	ErrMissingClientID        = NewDomainError("MISSING_CLIENT_ID", "Operation requires a persisted client id")
	ErrUnknownTransactionType = NewDomainError("UNKNOWN_TRANSACTION_TYPE", "Unrecognized transaction type discriminator")
	ErrCurrencyMismatch       = NewDomainError("CURRENCY_MISMATCH", "Monetary values have different currencies")
)
