package jsonrpc

import "github.com/tidwall/gjson"

// Version is the only accepted value of the "jsonrpc" member.
const Version = "2.0"

// CheckVersion returns v unchanged if it is the accepted protocol version.
func CheckVersion(v string) (string, error) {
	if v != Version {
		return "", decodeErr("jsonrpc", ReasonValue, "jsonrpc version NOT %s: %q", Version, v)
	}
	return v, nil
}

// decodeVersion validates the "jsonrpc" member of an envelope. A non-string
// value is a type failure, a different string a value failure.
func decodeVersion(m members) error {
	v, ok := m["jsonrpc"]
	if !ok {
		return decodeErr("jsonrpc", ReasonMissing, "required member is missing")
	}
	if v.Type != gjson.String {
		return decodeErr("jsonrpc", ReasonType, "jsonrpc version MUST be the string %q, got %s %s", Version, kindOf(v), v.Raw)
	}
	_, err := CheckVersion(v.String())
	return err
}
