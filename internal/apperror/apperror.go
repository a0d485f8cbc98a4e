// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
)

// Kind classifies an Error for transport-agnostic status mapping.
type Kind int

const (
	Internal Kind = iota
	BadRequest
	Unauthorized
	NotFound
	Conflict
	UpstreamUnavailable
)

func (k Kind) String() string {
	switch k {
	case BadRequest:
		return "bad_request"
	case Unauthorized:
		return "unauthorized"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case UpstreamUnavailable:
		return "upstream_unavailable"
	default:
		return "internal"
	}
}

// Error is the application's typed error. It carries a human message, an
// optional operator-facing remediation hint, and the error it wraps.
type Error struct {
	Kind     Kind
	Message  string
	Solution *string
	Wrapped  error
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// HTTPStatus maps the error kind to the HTTP status code used across §6/§7.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case BadRequest:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case UpstreamUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// GRPCCode maps the error kind onto the coordinator's three-way status
// table: not_found -> NotFound, internal and upstream_unavailable ->
// Internal, anything else -> InvalidArgument.
func (e *Error) GRPCCode() codes.Code {
	switch e.Kind {
	case NotFound:
		return codes.NotFound
	case Internal, UpstreamUnavailable:
		return codes.Internal
	default:
		return codes.InvalidArgument
	}
}

func newf(kind Kind, solution *string, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Solution: solution}
}

func withSolution(s string) *string { return &s }

func NewBadRequest(format string, args ...any) *Error {
	return newf(BadRequest, nil, format, args...)
}

func NewUnauthorized(format string, args ...any) *Error {
	return newf(Unauthorized, nil, format, args...)
}

func NewNotFound(format string, args ...any) *Error {
	return newf(NotFound, nil, format, args...)
}

func NewConflict(format string, args ...any) *Error {
	return newf(Conflict, nil, format, args...)
}

func NewUpstreamUnavailable(wrapped error, format string, args ...any) *Error {
	e := newf(UpstreamUnavailable, nil, format, args...)
	e.Wrapped = wrapped
	return e
}

func NewInternal(wrapped error, format string, args ...any) *Error {
	e := newf(Internal, withSolution("Please contact the support team."), format, args...)
	e.Wrapped = wrapped
	return e
}

// As reports whether err is (or wraps) an *Error and returns it.
func As(err error) (*Error, bool) {
	var ae *Error
	ok := errors.As(err, &ae)
	return ae, ok
}
