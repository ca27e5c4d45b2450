package jsonrpc

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/tidwall/gjson"
)

// IDKind is the variant held by an ID.
type IDKind uint8

const (
	IDNull IDKind = iota
	IDString
	IDInteger
	IDFractional
)

func (k IDKind) String() string {
	switch k {
	case IDNull:
		return "Null"
	case IDString:
		return "String"
	case IDInteger:
		return "Integer"
	case IDFractional:
		return "Fractional"
	}
	return "Unknown"
}

// ID is the "id" member of a Request or Response: a string, an integer, a
// fractional number or null. The zero value is the null ID.
//
// On the wire an integer is written without a fraction and a fractional
// number always with one, so IntID(2) and FractionalID(2) stay distinct
// through a round trip.
type ID struct {
	kind IDKind
	str  string
	num  int64
	frac float32
}

func StringID(s string) ID { return ID{kind: IDString, str: s} }

func IntID(n int64) ID { return ID{kind: IDInteger, num: n} }

func FractionalID(f float32) ID { return ID{kind: IDFractional, frac: f} }

func NullID() ID { return ID{} }

func (id ID) Kind() IDKind { return id.kind }

func (id ID) IsNull() bool { return id.kind == IDNull }

func (id ID) AsString() (string, error) {
	if id.kind != IDString {
		return "", &TypeError{From: id.kind, To: "String"}
	}
	return id.str, nil
}

func (id ID) AsInt() (int64, error) {
	if id.kind != IDInteger {
		return 0, &TypeError{From: id.kind, To: "Integer"}
	}
	return id.num, nil
}

func (id ID) AsFractional() (float32, error) {
	if id.kind != IDFractional {
		return 0, &TypeError{From: id.kind, To: "Fractional"}
	}
	return id.frac, nil
}

// AsNull succeeds only for the null ID.
func (id ID) AsNull() error {
	if id.kind != IDNull {
		return &TypeError{From: id.kind, To: "Null"}
	}
	return nil
}

// String returns the wire form of the ID, for logs.
func (id ID) String() string {
	b, err := id.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%s(%v)", id.kind, id.frac)
	}
	return string(b)
}

func (id ID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case IDString:
		return marshal(id.str)
	case IDInteger:
		return strconv.AppendInt(nil, id.num, 10), nil
	case IDFractional:
		return formatFractional(id.frac)
	}
	return []byte("null"), nil
}

func (id *ID) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return decodeErr("id", ReasonSyntax, "malformed JSON")
	}
	v, err := decodeID(gjson.ParseBytes(data))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func formatFractional(f float32) ([]byte, error) {
	f64 := float64(f)
	if math.IsNaN(f64) || math.IsInf(f64, 0) {
		return nil, fmt.Errorf("jsonrpc: unsupported fractional id %v", f)
	}
	b := strconv.AppendFloat(nil, f64, 'g', -1, 32)
	if !isFractionLiteral(string(b)) {
		b = append(b, ".0"...)
	}
	return b, nil
}

// decodeID inspects the JSON kind first and then parses that one variant.
func decodeID(v gjson.Result) (ID, error) {
	switch v.Type {
	case gjson.Null:
		return NullID(), nil
	case gjson.String:
		return StringID(v.String()), nil
	case gjson.Number:
		if isFractionLiteral(v.Raw) {
			f, err := strconv.ParseFloat(v.Raw, 32)
			if err != nil {
				return ID{}, numberErr(v.Raw, "fractional", err)
			}
			return FractionalID(float32(f)), nil
		}
		n, err := strconv.ParseInt(v.Raw, 10, 64)
		if err != nil {
			return ID{}, numberErr(v.Raw, "integer", err)
		}
		return IntID(n), nil
	}
	return ID{}, decodeErr("id", ReasonType, "id MUST be a string, number or null, got %s", kindOf(v))
}

func numberErr(raw, what string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return decodeErr("id", ReasonValue, "%s id %s out of range", what, raw)
	}
	return &DecodeError{Field: "id", Reason: ReasonValue, Detail: "invalid " + what + " id " + raw, Err: err}
}
