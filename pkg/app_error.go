package pkg

// AppError is the error shape returned to HTTP clients.
//
// Code is a stable machine-readable identifier, Message a human-readable summary.
// Err keeps the underlying cause for logs and is never serialized.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
