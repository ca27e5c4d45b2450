package jsonrpc

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// members holds the top-level members of a JSON object.
type members map[string]gjson.Result

// parseObject validates data and returns its members. field names the
// object in errors and is empty for a whole message.
func parseObject(data []byte, field string) (members, error) {
	if !gjson.ValidBytes(data) {
		return nil, decodeErr(field, ReasonSyntax, "malformed JSON")
	}
	return objectMembers(gjson.ParseBytes(data), field)
}

func objectMembers(v gjson.Result, field string) (members, error) {
	if !v.IsObject() {
		return nil, decodeErr(field, ReasonType, "expected object, got %s", kindOf(v))
	}
	m := members{}
	v.ForEach(func(key, value gjson.Result) bool {
		m[key.String()] = value
		return true
	})
	return m, nil
}

// kindOf names the JSON type of v for error messages.
func kindOf(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return "null"
	case gjson.False, gjson.True:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	case gjson.JSON:
		if v.IsArray() {
			return "array"
		}
		return "object"
	}
	return "nothing"
}

// isFractionLiteral reports whether a number literal was written with a
// fraction or exponent.
func isFractionLiteral(raw string) bool {
	return strings.ContainsAny(raw, ".eE")
}

// compact returns the compact form of a raw JSON value.
func compact(raw string) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(raw)); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

// stringMember reads a required string member.
func stringMember(m members, name, field string) (string, error) {
	v, ok := m[name]
	if !ok {
		return "", decodeErr(field, ReasonMissing, "required member is missing")
	}
	if v.Type != gjson.String {
		return "", decodeErr(field, ReasonType, "expected string, got %s", kindOf(v))
	}
	return v.String(), nil
}

// marshal encodes v without escaping HTML characters, so raw members are
// written back exactly as they were decoded.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
