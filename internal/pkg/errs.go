package pkg

import (
	"errors"
	"net/http"
)

type ErrKind int

const (
	KindInvalid ErrKind = iota + 1
	KindUnauthorized
	KindNotFound
	KindConflict
)

// AppError 业务错误：Kind决定HTTP状态码，Msg直接返回给调用方
type AppError struct {
	Kind ErrKind
	Msg  string
}

func (e *AppError) Error() string { return e.Msg }

func ErrInvalid(msg string) error      { return &AppError{Kind: KindInvalid, Msg: msg} }
func ErrUnauthorized(msg string) error { return &AppError{Kind: KindUnauthorized, Msg: msg} }
func ErrNotFound(msg string) error     { return &AppError{Kind: KindNotFound, Msg: msg} }
func ErrConflict(msg string) error     { return &AppError{Kind: KindConflict, Msg: msg} }

// StatusOf 业务错误映射状态码，其余一律500
func StatusOf(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		switch ae.Kind {
		case KindInvalid:
			return http.StatusBadRequest
		case KindUnauthorized:
			return http.StatusUnauthorized
		case KindNotFound:
			return http.StatusNotFound
		case KindConflict:
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}
