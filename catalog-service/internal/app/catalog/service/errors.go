package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure for the transport layer.
type ErrorKind int

const (
	// KindUpstream covers store, blob and any other unexpected failure.
	KindUpstream ErrorKind = iota
	KindValidation
	KindDuplicate
	KindReference
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDuplicate:
		return "duplicate"
	case KindReference:
		return "reference"
	case KindNotFound:
		return "not_found"
	default:
		return "upstream"
	}
}

// Error is a classified service failure. Message is safe to show to clients.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or KindUpstream.
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindUpstream
}

func validationError(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func duplicateCategoryError(name string) error {
	return &Error{Kind: KindDuplicate, Message: fmt.Sprintf("Category with name '%s' already exists", name)}
}

func notFoundError(msg string, cause error) error {
	return &Error{Kind: KindNotFound, Message: msg, Err: cause}
}

func referenceError(msg string) error {
	return &Error{Kind: KindReference, Message: msg}
}

func upstreamError(msg string, cause error) error {
	return &Error{Kind: KindUpstream, Message: fmt.Sprintf("%s: %v", msg, cause), Err: cause}
}

const (
	msgCategoryIDRequired = "categoryId is required"
	msgCategoryNotFound   = "Category not found"
	msgProductIDRequired  = "productId is required"
	msgProductNotFound    = "Product not found"
)

// NewValidationError lets the transport layer report decoding problems with
// the same classification as service-side validation.
func NewValidationError(msg string) error {
	return validationError(msg)
}
