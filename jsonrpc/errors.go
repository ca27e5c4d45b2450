package jsonrpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Reserved error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603

	// The server error band is reserved for implementation-defined errors.
	CodeServerErrorMin = -32099
	CodeServerErrorMax = -32000
)

// Messages paired with the reserved codes.
const (
	MessageParseError     = "Parse error"
	MessageInvalidRequest = "Invalid Request"
	MessageMethodNotFound = "Method not found"
	MessageInvalidParams  = "Invalid params"
	MessageInternalError  = "Internal error"
	MessageServerError    = "Server error"
)

var (
	// ErrTypeMismatch is matched by every *TypeError.
	ErrTypeMismatch = errors.New("jsonrpc: type mismatch")
	// ErrInvalidMessage is matched by every *DecodeError.
	ErrInvalidMessage = errors.New("jsonrpc: invalid message")
)

// Error is the error object carried by an error Response. It implements the
// error interface so handlers can return it directly.
type Error struct {
	Code    int32
	Message string
	// Data is absent when nil. An explicit JSON null is kept as "null".
	Data json.RawMessage
}

func (e Error) status() {}

func (e Error) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// NewError returns an Error without data.
func NewError(code int32, message string) Error {
	return Error{Code: code, Message: message}
}

// TypeError reports an ID conversion to a native type that does not match
// the stored variant.
type TypeError struct {
	From IDKind
	To   string
}

func (e *TypeError) Error() string {
	if e == nil {
		return "jsonrpc: type error: <nil>"
	}
	return fmt.Sprintf("cannot convert Id type %s to %s", e.From, e.To)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// Reason classifies a DecodeError.
type Reason int

const (
	// ReasonSyntax means the text is not JSON.
	ReasonSyntax Reason = iota
	// ReasonMissing means a required member is absent.
	ReasonMissing
	// ReasonType means a member holds the wrong JSON type.
	ReasonType
	// ReasonValue means a member has the right type but a disallowed value.
	ReasonValue
	// ReasonShape means the set of members is not a valid message.
	ReasonShape
)

func (r Reason) String() string {
	switch r {
	case ReasonSyntax:
		return "syntax"
	case ReasonMissing:
		return "missing"
	case ReasonType:
		return "type"
	case ReasonValue:
		return "value"
	case ReasonShape:
		return "shape"
	}
	return "unknown"
}

// DecodeError reports wire JSON that violates a JSON-RPC constraint.
type DecodeError struct {
	// Field is the dotted member path, e.g. "error.code". Empty for the
	// message as a whole.
	Field  string
	Reason Reason
	Detail string
	Err    error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "jsonrpc: decode error: <nil>"
	}
	msg := "jsonrpc: "
	if e.Field != "" {
		msg += `"` + e.Field + `": `
	}
	msg += e.Detail
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidMessage
}

func decodeErr(field string, reason Reason, format string, args ...any) error {
	return &DecodeError{Field: field, Reason: reason, Detail: fmt.Sprintf(format, args...)}
}
