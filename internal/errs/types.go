package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// ExternalServiceError covers failures talking to a downstream service.
// Transient marks conditions worth retrying from the caller's side
// (timeouts, connection refused) as opposed to hard upstream failures.
type ExternalServiceError struct {
	ErrorMessage
	Service   string
	Transient bool
}

// UpstreamError propagates a downstream HTTP status to the caller with a
// generic message, for routes that mirror the backend's status codes.
type UpstreamError struct {
	ErrorMessage
	Status int
}

// OAuthError covers failures in the Google OAuth handshake. Detail is a
// fixed, non-sensitive string safe to put in a redirect URL.
type OAuthError struct {
	ErrorMessage
	Detail string
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUpstreamError(status int, message string) *UpstreamError {
	return &UpstreamError{
		ErrorMessage: ErrorMessage{Message: message},
		Status:       status,
	}
}

func NewExternalServiceError(service, message string, transient bool) *ExternalServiceError {
	return &ExternalServiceError{
		ErrorMessage: ErrorMessage{Message: message},
		Service:      service,
		Transient:    transient,
	}
}

func NewOAuthError(message, detail string) *OAuthError {
	return &OAuthError{
		ErrorMessage: ErrorMessage{Message: message},
		Detail:       detail,
	}
}
