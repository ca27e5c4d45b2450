package jsonrpc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"object", `{"val":123}`, false},
		{"array", `["hello","hi"]`, false},
		{"empty array", `[]`, false},
		{"empty object", `{}`, false},
		{"number", `12`, true},
		{"string", `"hello"`, true},
		{"bool", `true`, true},
		{"null", `null`, true},
		{"empty text", ``, true},
		{"malformed", `{"val":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseParams(tt.text)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidMessage)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseParamsEmptyTextIsSyntaxError(t *testing.T) {
	_, err := ParseParams("")
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	require.Equal(t, ReasonSyntax, de.Reason)
}

func TestNewParams(t *testing.T) {
	p, err := NewParams([]int{10, 0})
	require.NoError(t, err)
	require.True(t, p.IsArray())
	require.Equal(t, `[10,0]`, string(p.Raw()))

	p, err = NewParams(map[string]int{"subtrahend": 23})
	require.NoError(t, err)
	require.True(t, p.IsObject())

	for _, v := range []any{5, "text", true, nil, 1.5} {
		_, err := NewParams(v)
		require.Error(t, err, "%v", v)
	}

	_, err = NewParams(make(chan int))
	require.Error(t, err)
}

func TestParamsCompact(t *testing.T) {
	a, err := ParseParams("[1, 2,\n 3]")
	require.NoError(t, err)
	b, err := ParseParams("[1,2,3]")
	require.NoError(t, err)
	require.True(t, a.Equal(b))
	require.Equal(t, b, a)
}

func TestParamsDecode(t *testing.T) {
	p, err := ParseParams(`{"minuend":42,"subtrahend":23}`)
	require.NoError(t, err)

	var args struct {
		Minuend    int `json:"minuend"`
		Subtrahend int `json:"subtrahend"`
	}
	require.NoError(t, p.Decode(&args))
	require.Equal(t, 42, args.Minuend)
	require.Equal(t, 23, args.Subtrahend)

	var zero Params
	require.Error(t, zero.Decode(&args))
}

func TestParamsRawIsACopy(t *testing.T) {
	p, err := ParseParams(`[1]`)
	require.NoError(t, err)
	raw := p.Raw()
	raw[1] = '9'
	require.Equal(t, `[1]`, string(p.Raw()))
}
