package errcode

import (
	"fmt"
	"net/http"
)

// Err is a coded error with an HTTP status attached. API handlers return
// these; xhttp turns them into the response envelope.
type Err struct {
	code   int
	msg    string
	status int
}

func NewErr(code int, msg string, status int) *Err {
	return &Err{code: code, msg: msg, status: status}
}

func NewInvalidParamsErr(msg string) *Err {
	return &Err{code: CodeInvalidParams, msg: msg, status: http.StatusBadRequest}
}

func NewNotFoundErr(msg string) *Err {
	return &Err{code: CodeNotFound, msg: msg, status: http.StatusNotFound}
}

func NewUnauthorizedErr(msg string) *Err {
	return &Err{code: CodeUnauthorized, msg: msg, status: http.StatusForbidden}
}

func (e *Err) Error() string { return fmt.Sprintf("code: %d, msg: %s", e.code, e.msg) }
func (e *Err) Code() int     { return e.code }
func (e *Err) Msg() string   { return e.msg }

// HTTPStatus reports the status the envelope should be written with.
func (e *Err) HTTPStatus() int {
	if e.status == 0 {
		return http.StatusInternalServerError
	}
	return e.status
}

const (
	CodeOK            = 200
	CodeInternal      = 10000
	CodeInvalidParams = 10001
	CodeUnauthorized  = 10003
	CodeNotFound      = 10004
)

var (
	ErrInternal      = NewErr(CodeInternal, "internal server error", http.StatusInternalServerError)
	ErrInvalidParams = NewErr(CodeInvalidParams, "invalid params", http.StatusBadRequest)
	ErrUnauthorized  = NewErr(CodeUnauthorized, "unauthorized wallet address", http.StatusForbidden)
	ErrNotFound      = NewErr(CodeNotFound, "record not found", http.StatusNotFound)
)
