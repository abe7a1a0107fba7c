package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Person errors
var (
	ErrPersonNotFound   = errors.New("person not found")
	ErrIdentifierExists = errors.New("identifier already in use by another person")
)

// Candidate errors
var (
	ErrCandidateNotFound = errors.New("candidate not found")
	// ErrCandidateCreation is returned when a candidate is saved without a
	// person holding an institutional identifier (netid or ORCID).
	ErrCandidateCreation = errors.New("candidate requires a person with an institutional identifier")
)

// Keyword errors
var (
	ErrKeywordInvalid = errors.New("keyword is empty or exceeds the maximum length")
)

// Committee member errors
var (
	ErrCommitteeMember         = errors.New("committee member requires either a department or an affiliation")
	ErrCommitteeMemberNotFound = errors.New("committee member not found")
)

// Thesis errors
var (
	ErrThesisNotFound = errors.New("thesis not found")
	// ErrThesisNotReady is returned by submit when the document or any
	// required metadata field is missing.
	ErrThesisNotReady = errors.New("thesis is missing its document or required metadata")
	// ErrThesisInvalidTransition is returned by accept/reject outside the
	// pending state.
	ErrThesisInvalidTransition = errors.New("thesis is not awaiting review")
	ErrThesisInvalidFile       = errors.New("thesis document must be a PDF")
	ErrThesisDocumentLocked    = errors.New("thesis document cannot be replaced after acceptance")
)

// Checklist errors
var (
	ErrChecklistNotFound    = errors.New("gradschool checklist not found")
	ErrChecklistUnknownItem = errors.New("unknown checklist item")
)

// Reference data errors
var (
	ErrYearAlreadyExists       = errors.New("year already exists")
	ErrDepartmentAlreadyExists = errors.New("department with this name already exists")
	ErrDegreeAlreadyExists     = errors.New("degree with this name or abbreviation already exists")
	ErrLanguageAlreadyExists   = errors.New("language with this code already exists")
)

// Mail errors
var (
	ErrMailDelivery = errors.New("notification delivery failed")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
