package service

import "errors"

// 业务层错误类别，handler 根据类别映射到 HTTP 状态码。
var (
	ErrStore           = errors.New("store error")
	ErrValidation      = errors.New("validation error")
	ErrDuplicateUser   = errors.New("duplicate user")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrHash            = errors.New("hash error")
	ErrNotFound        = errors.New("not found")
)

// Error 携带错误类别、返回给客户端的消息以及底层原因。
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap 同时暴露类别和原因，errors.Is 对两者都生效。
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func fail(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// MessageOf 返回可以展示给客户端的消息，非 *Error 一律视为内部错误。
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}

// KindName 用于指标标签。
func KindName(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrDuplicateUser):
		return "duplicate_user"
	case errors.Is(err, ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, ErrInvalidPassword):
		return "invalid_password"
	case errors.Is(err, ErrHash):
		return "hash_error"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "store_error"
	}
}
