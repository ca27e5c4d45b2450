package jsonrpc

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Params is the structured "params" member: a JSON array (by-position) or
// object (by-name). The zero value is not valid; envelopes model absent
// params as a nil *Params.
type Params struct {
	raw json.RawMessage
}

// NewParams serializes v and accepts the result only if it is an array or
// an object.
func NewParams(v any) (Params, error) {
	b, err := marshal(v)
	if err != nil {
		return Params{}, err
	}
	return paramsFromText(b)
}

// ParseParams parses JSON text as params. Empty text is malformed JSON.
func ParseParams(text string) (Params, error) {
	return paramsFromText([]byte(text))
}

func paramsFromText(b []byte) (Params, error) {
	if !gjson.ValidBytes(b) {
		return Params{}, decodeErr("params", ReasonSyntax, "malformed JSON")
	}
	return decodeParams(gjson.ParseBytes(b))
}

func decodeParams(v gjson.Result) (Params, error) {
	if !v.IsObject() && !v.IsArray() {
		return Params{}, decodeErr("params", ReasonType, `"params" must be a JSON object or array, got %s`, kindOf(v))
	}
	raw, err := compact(v.Raw)
	if err != nil {
		return Params{}, &DecodeError{Field: "params", Reason: ReasonSyntax, Detail: "malformed JSON", Err: err}
	}
	return Params{raw: raw}, nil
}

// Raw returns the compact JSON text of the params.
func (p Params) Raw() json.RawMessage {
	return bytes.Clone(p.raw)
}

func (p Params) IsArray() bool {
	return len(p.raw) > 0 && p.raw[0] == '['
}

func (p Params) IsObject() bool {
	return len(p.raw) > 0 && p.raw[0] == '{'
}

// Decode unmarshals the params into v.
func (p Params) Decode(v any) error {
	if len(p.raw) == 0 {
		return decodeErr("params", ReasonMissing, "params are empty")
	}
	return json.Unmarshal(p.raw, v)
}

func (p Params) Equal(o Params) bool {
	return bytes.Equal(p.raw, o.raw)
}

func (p Params) MarshalJSON() ([]byte, error) {
	if len(p.raw) == 0 {
		return nil, decodeErr("params", ReasonMissing, "params are empty")
	}
	return p.raw, nil
}

func (p *Params) UnmarshalJSON(data []byte) error {
	v, err := paramsFromText(data)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
