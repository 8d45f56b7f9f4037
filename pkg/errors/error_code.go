package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter ErrorCode = 100
	ErrCodeInvalidOrder     ErrorCode = 102
	ErrCodeInvalidPeriod    ErrorCode = 104
	ErrCodeInvalidPrice     ErrorCode = 107
	ErrCodeInvalidExpiry    ErrorCode = 108

	// Identifier errors (200-299)
	ErrCodeIdentifierExhausted ErrorCode = 200
	ErrCodeInvalidCount        ErrorCode = 201
	ErrCodeCountStoreFailed    ErrorCode = 202

	// Indicator errors (300-399)
	ErrCodeIndicatorAlreadyBound ErrorCode = 301

	// Strategy errors (400-499)
	ErrCodeStrategyConfigError  ErrorCode = 400
	ErrCodeStrategyRuntimeError ErrorCode = 401

	// Execution errors (500-599)
	ErrCodeOrderFailed   ErrorCode = 500
	ErrCodeOrderNotFound ErrorCode = 501
	ErrCodeModifyFailed  ErrorCode = 503

	// Market data errors (600-699)
	ErrCodeDataNotFound          ErrorCode = 600
	ErrCodeDataSourceUnavailable ErrorCode = 601
	ErrCodeQueryFailed           ErrorCode = 602
	ErrCodeNotSubscribed         ErrorCode = 603
)
