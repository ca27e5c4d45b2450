package jsonrpc

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Response builder states. The id may be set before or after choosing the
// Success or Error branch.
type (
	ResponseBuilder struct{ c responseCore }
	ResponseWithID  struct{ c responseCore }
)

type responseCore struct {
	id ID
	o  options
}

// NewResponseBuilder starts building a Response.
func NewResponseBuilder(opts ...Option) ResponseBuilder {
	return ResponseBuilder{c: responseCore{o: newOptions(opts)}}
}

func (b ResponseBuilder) ID(id ID) ResponseWithID {
	b.c.id = id
	return ResponseWithID(b)
}

func (b ResponseBuilder) Success() SuccessBuilder {
	return SuccessBuilder{c: successCore{responseCore: b.c}}
}

func (b ResponseBuilder) Error() ErrorBuilder {
	return ErrorBuilder{c: errorCore{responseCore: b.c}}
}

func (b ResponseWithID) Success() SuccessReady {
	return SuccessReady{c: successCore{responseCore: b.c}}
}

func (b ResponseWithID) Error() ErrorWithID {
	return ErrorWithID{c: errorCore{responseCore: b.c}}
}

// Success branch states. The result is optional and defaults to null.
type (
	SuccessBuilder struct{ c successCore }
	SuccessReady   struct{ c successCore }
)

type successCore struct {
	responseCore
	result json.RawMessage
}

func (c successCore) withResult(raw json.RawMessage, err error) (successCore, error) {
	if err != nil {
		return c, err
	}
	c.result = raw
	return c, nil
}

func (b SuccessBuilder) ID(id ID) SuccessReady {
	b.c.id = id
	return SuccessReady(b)
}

// Result serializes v as the result.
func (b SuccessBuilder) Result(v any) (SuccessBuilder, error) {
	c, err := b.c.withResult(marshalValue(v))
	return SuccessBuilder{c}, err
}

// ResultJSON uses JSON text as the result.
func (b SuccessBuilder) ResultJSON(text string) (SuccessBuilder, error) {
	c, err := b.c.withResult(parseValue("result", text))
	return SuccessBuilder{c}, err
}

func (b SuccessReady) Result(v any) (SuccessReady, error) {
	c, err := b.c.withResult(marshalValue(v))
	return SuccessReady{c}, err
}

func (b SuccessReady) ResultJSON(text string) (SuccessReady, error) {
	c, err := b.c.withResult(parseValue("result", text))
	return SuccessReady{c}, err
}

func (b SuccessReady) Build() Response {
	b.c.o.adviseID("response", b.c.id)
	return Response{ID: b.c.id, Status: Success{Result: resultOrNull(b.c.result)}}
}

func marshalValue(v any) (json.RawMessage, error) {
	b, err := marshal(v)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(b), nil
}

func parseValue(field, text string) (json.RawMessage, error) {
	if !gjson.Valid(text) {
		return nil, decodeErr(field, ReasonSyntax, "malformed JSON")
	}
	raw, err := compact(text)
	if err != nil {
		return nil, &DecodeError{Field: field, Reason: ReasonSyntax, Detail: "malformed JSON", Err: err}
	}
	return raw, nil
}
