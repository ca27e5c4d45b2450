package jsonrpc

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type idHolder struct {
	ID ID `json:"id"`
}

func TestIDRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ID
	}{
		{"string", `{"id":"string-id"}`, StringID("string-id")},
		{"integer", `{"id":64}`, IntID(64)},
		{"negative integer", `{"id":-7}`, IntID(-7)},
		{"fractional", `{"id":1.2}`, FractionalID(1.2)},
		{"integral fractional", `{"id":2.0}`, FractionalID(2)},
		{"null", `{"id":null}`, NullID()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h idHolder
			require.NoError(t, json.Unmarshal([]byte(tt.text), &h))
			require.Equal(t, tt.want, h.ID)

			out, err := json.Marshal(h)
			require.NoError(t, err)
			require.Equal(t, tt.text, string(out))
		})
	}
}

func TestIDExponentIsFractional(t *testing.T) {
	var id ID
	require.NoError(t, id.UnmarshalJSON([]byte(`1e3`)))
	require.Equal(t, IDFractional, id.Kind())
	f, err := id.AsFractional()
	require.NoError(t, err)
	require.Equal(t, float32(1000), f)

	b, err := id.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, "1000.0", string(b))
}

func TestIDIntegerAndFractionalStayDistinct(t *testing.T) {
	require.NotEqual(t, IntID(2), FractionalID(2))

	_, err := IntID(2).AsFractional()
	require.ErrorIs(t, err, ErrTypeMismatch)

	b, err := FractionalID(2).MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, "2.0", string(b))

	b, err = IntID(2).MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, "2", string(b))
}

func TestIDConversions(t *testing.T) {
	ids := []ID{StringID("abc"), IntID(25), FractionalID(1.5), NullID()}

	for _, id := range ids {
		t.Run(id.Kind().String(), func(t *testing.T) {
			s, err := id.AsString()
			if id.Kind() == IDString {
				require.NoError(t, err)
				require.Equal(t, "abc", s)
			} else {
				require.ErrorIs(t, err, ErrTypeMismatch)
			}

			n, err := id.AsInt()
			if id.Kind() == IDInteger {
				require.NoError(t, err)
				require.Equal(t, int64(25), n)
			} else {
				require.ErrorIs(t, err, ErrTypeMismatch)
			}

			f, err := id.AsFractional()
			if id.Kind() == IDFractional {
				require.NoError(t, err)
				require.Equal(t, float32(1.5), f)
			} else {
				require.ErrorIs(t, err, ErrTypeMismatch)
			}

			err = id.AsNull()
			if id.Kind() == IDNull {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrTypeMismatch)
			}
		})
	}
}

func TestIDTypeErrorMessages(t *testing.T) {
	_, err := IntID(1).AsString()
	require.EqualError(t, err, "cannot convert Id type Integer to String")

	_, err = StringID("x").AsInt()
	require.EqualError(t, err, "cannot convert Id type String to Integer")

	_, err = NullID().AsFractional()
	require.EqualError(t, err, "cannot convert Id type Null to Fractional")

	err = FractionalID(0.5).AsNull()
	require.EqualError(t, err, "cannot convert Id type Fractional to Null")

	var te *TypeError
	require.True(t, errors.As(err, &te))
	require.Equal(t, IDFractional, te.From)
	require.Equal(t, "Null", te.To)
}

func TestIDZeroValueIsNull(t *testing.T) {
	var id ID
	require.True(t, id.IsNull())
	require.Equal(t, NullID(), id)
}

func TestIDRejects(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		reason Reason
	}{
		{"object", `{"test":"id"}`, ReasonType},
		{"array", `["test","id"]`, ReasonType},
		{"true", `true`, ReasonType},
		{"false", `false`, ReasonType},
		{"integer overflow", `9223372036854775808`, ReasonValue},
		{"fractional overflow", `1e40`, ReasonValue},
		{"malformed", `"abc`, ReasonSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := id.UnmarshalJSON([]byte(tt.text))
			require.ErrorIs(t, err, ErrInvalidMessage)
			var de *DecodeError
			require.True(t, errors.As(err, &de))
			require.Equal(t, "id", de.Field)
			require.Equal(t, tt.reason, de.Reason)
		})
	}
}

func TestIDMissingFromHolder(t *testing.T) {
	_, err := DecodeRequest([]byte(`{"jsonrpc":"2.0","method":"m"}`))
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "id", de.Field)
	require.Equal(t, ReasonMissing, de.Reason)
}

func TestIDNaNDoesNotEncode(t *testing.T) {
	var zero float32
	_, err := FractionalID(zero / zero).MarshalJSON()
	require.Error(t, err)
}

func TestIDString(t *testing.T) {
	require.Equal(t, `"a"`, StringID("a").String())
	require.Equal(t, "3", IntID(3).String())
	require.Equal(t, "0.5", FractionalID(0.5).String())
	require.Equal(t, "null", NullID().String())
}
