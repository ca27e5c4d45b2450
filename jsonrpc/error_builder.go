package jsonrpc

import (
	"encoding/json"
	"fmt"
)

// Error branch states. The id, code and message are tracked independently;
// each state type is named after the fields it already holds, and Build
// exists only on ErrorReady. The presets set code and message together and
// are available only while both are unset. Data may be attached in any state.
type (
	ErrorBuilder         struct{ c errorCore }
	ErrorWithID          struct{ c errorCore }
	ErrorWithCode        struct{ c errorCore }
	ErrorWithMessage     struct{ c errorCore }
	ErrorWithIDCode      struct{ c errorCore }
	ErrorWithIDMessage   struct{ c errorCore }
	ErrorWithCodeMessage struct{ c errorCore }
	ErrorReady           struct{ c errorCore }
)

type errorCore struct {
	responseCore
	code    int32
	message string
	data    json.RawMessage
}

func (c errorCore) withData(raw json.RawMessage, err error) (errorCore, error) {
	if err != nil {
		return c, err
	}
	c.data = raw
	return c, nil
}

func (c errorCore) preset(code int32, message string) errorCore {
	c.code = code
	c.message = message
	return c
}

// ServerErrorCode is a code within the reserved server error band
// [CodeServerErrorMin, CodeServerErrorMax].
type ServerErrorCode int32

// NewServerErrorCode checks that code lies in the server error band.
func NewServerErrorCode(code int32) (ServerErrorCode, error) {
	if code < CodeServerErrorMin || code > CodeServerErrorMax {
		return 0, fmt.Errorf("jsonrpc: server error code %d outside [%d, %d]", code, CodeServerErrorMin, CodeServerErrorMax)
	}
	return ServerErrorCode(code), nil
}

// MustServerErrorCode is like NewServerErrorCode but panics on an
// out-of-band code.
func MustServerErrorCode(code int32) ServerErrorCode {
	c, err := NewServerErrorCode(code)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// ErrorBuilder: nothing set.

func (b ErrorBuilder) ID(id ID) ErrorWithID {
	b.c.id = id
	return ErrorWithID(b)
}

func (b ErrorBuilder) Code(code int32) ErrorWithCode {
	b.c.code = code
	return ErrorWithCode(b)
}

func (b ErrorBuilder) Message(m string) ErrorWithMessage {
	b.c.message = m
	return ErrorWithMessage(b)
}

func (b ErrorBuilder) ParseError() ErrorWithCodeMessage {
	return ErrorWithCodeMessage{b.c.preset(CodeParseError, MessageParseError)}
}

func (b ErrorBuilder) InvalidRequest() ErrorWithCodeMessage {
	return ErrorWithCodeMessage{b.c.preset(CodeInvalidRequest, MessageInvalidRequest)}
}

func (b ErrorBuilder) MethodNotFound() ErrorWithCodeMessage {
	return ErrorWithCodeMessage{b.c.preset(CodeMethodNotFound, MessageMethodNotFound)}
}

func (b ErrorBuilder) InvalidParams() ErrorWithCodeMessage {
	return ErrorWithCodeMessage{b.c.preset(CodeInvalidParams, MessageInvalidParams)}
}

func (b ErrorBuilder) InternalError() ErrorWithCodeMessage {
	return ErrorWithCodeMessage{b.c.preset(CodeInternalError, MessageInternalError)}
}

// ServerError sets an application code from the server error band with the
// message "Server error". It panics if code is outside the band.
func (b ErrorBuilder) ServerError(code int32) ErrorWithCodeMessage {
	return ErrorWithCodeMessage{b.c.preset(int32(MustServerErrorCode(code)), MessageServerError)}
}

// Data serializes v as the error data.
func (b ErrorBuilder) Data(v any) (ErrorBuilder, error) {
	c, err := b.c.withData(marshalValue(v))
	return ErrorBuilder{c}, err
}

// DataJSON uses JSON text as the error data.
func (b ErrorBuilder) DataJSON(text string) (ErrorBuilder, error) {
	c, err := b.c.withData(parseValue("error.data", text))
	return ErrorBuilder{c}, err
}

// ErrorWithID: id set.

func (b ErrorWithID) Code(code int32) ErrorWithIDCode {
	b.c.code = code
	return ErrorWithIDCode(b)
}

func (b ErrorWithID) Message(m string) ErrorWithIDMessage {
	b.c.message = m
	return ErrorWithIDMessage(b)
}

func (b ErrorWithID) ParseError() ErrorReady {
	return ErrorReady{b.c.preset(CodeParseError, MessageParseError)}
}

func (b ErrorWithID) InvalidRequest() ErrorReady {
	return ErrorReady{b.c.preset(CodeInvalidRequest, MessageInvalidRequest)}
}

func (b ErrorWithID) MethodNotFound() ErrorReady {
	return ErrorReady{b.c.preset(CodeMethodNotFound, MessageMethodNotFound)}
}

func (b ErrorWithID) InvalidParams() ErrorReady {
	return ErrorReady{b.c.preset(CodeInvalidParams, MessageInvalidParams)}
}

func (b ErrorWithID) InternalError() ErrorReady {
	return ErrorReady{b.c.preset(CodeInternalError, MessageInternalError)}
}

func (b ErrorWithID) ServerError(code int32) ErrorReady {
	return ErrorReady{b.c.preset(int32(MustServerErrorCode(code)), MessageServerError)}
}

func (b ErrorWithID) Data(v any) (ErrorWithID, error) {
	c, err := b.c.withData(marshalValue(v))
	return ErrorWithID{c}, err
}

func (b ErrorWithID) DataJSON(text string) (ErrorWithID, error) {
	c, err := b.c.withData(parseValue("error.data", text))
	return ErrorWithID{c}, err
}

// ErrorWithCode: code set.

func (b ErrorWithCode) ID(id ID) ErrorWithIDCode {
	b.c.id = id
	return ErrorWithIDCode(b)
}

func (b ErrorWithCode) Message(m string) ErrorWithCodeMessage {
	b.c.message = m
	return ErrorWithCodeMessage(b)
}

func (b ErrorWithCode) Data(v any) (ErrorWithCode, error) {
	c, err := b.c.withData(marshalValue(v))
	return ErrorWithCode{c}, err
}

func (b ErrorWithCode) DataJSON(text string) (ErrorWithCode, error) {
	c, err := b.c.withData(parseValue("error.data", text))
	return ErrorWithCode{c}, err
}

// ErrorWithMessage: message set.

func (b ErrorWithMessage) ID(id ID) ErrorWithIDMessage {
	b.c.id = id
	return ErrorWithIDMessage(b)
}

func (b ErrorWithMessage) Code(code int32) ErrorWithCodeMessage {
	b.c.code = code
	return ErrorWithCodeMessage(b)
}

func (b ErrorWithMessage) Data(v any) (ErrorWithMessage, error) {
	c, err := b.c.withData(marshalValue(v))
	return ErrorWithMessage{c}, err
}

func (b ErrorWithMessage) DataJSON(text string) (ErrorWithMessage, error) {
	c, err := b.c.withData(parseValue("error.data", text))
	return ErrorWithMessage{c}, err
}

// ErrorWithIDCode: id and code set.

func (b ErrorWithIDCode) Message(m string) ErrorReady {
	b.c.message = m
	return ErrorReady(b)
}

func (b ErrorWithIDCode) Data(v any) (ErrorWithIDCode, error) {
	c, err := b.c.withData(marshalValue(v))
	return ErrorWithIDCode{c}, err
}

func (b ErrorWithIDCode) DataJSON(text string) (ErrorWithIDCode, error) {
	c, err := b.c.withData(parseValue("error.data", text))
	return ErrorWithIDCode{c}, err
}

// ErrorWithIDMessage: id and message set.

func (b ErrorWithIDMessage) Code(code int32) ErrorReady {
	b.c.code = code
	return ErrorReady(b)
}

func (b ErrorWithIDMessage) Data(v any) (ErrorWithIDMessage, error) {
	c, err := b.c.withData(marshalValue(v))
	return ErrorWithIDMessage{c}, err
}

func (b ErrorWithIDMessage) DataJSON(text string) (ErrorWithIDMessage, error) {
	c, err := b.c.withData(parseValue("error.data", text))
	return ErrorWithIDMessage{c}, err
}

// ErrorWithCodeMessage: code and message set.

func (b ErrorWithCodeMessage) ID(id ID) ErrorReady {
	b.c.id = id
	return ErrorReady(b)
}

func (b ErrorWithCodeMessage) Data(v any) (ErrorWithCodeMessage, error) {
	c, err := b.c.withData(marshalValue(v))
	return ErrorWithCodeMessage{c}, err
}

func (b ErrorWithCodeMessage) DataJSON(text string) (ErrorWithCodeMessage, error) {
	c, err := b.c.withData(parseValue("error.data", text))
	return ErrorWithCodeMessage{c}, err
}

// ErrorReady: everything required is set.

func (b ErrorReady) Data(v any) (ErrorReady, error) {
	c, err := b.c.withData(marshalValue(v))
	return ErrorReady{c}, err
}

func (b ErrorReady) DataJSON(text string) (ErrorReady, error) {
	c, err := b.c.withData(parseValue("error.data", text))
	return ErrorReady{c}, err
}

func (b ErrorReady) Build() Response {
	b.c.o.adviseID("response", b.c.id)
	return Response{
		ID:     b.c.id,
		Status: Error{Code: b.c.code, Message: b.c.message, Data: b.c.data},
	}
}
