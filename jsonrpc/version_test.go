package jsonrpc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckVersion(t *testing.T) {
	v, err := CheckVersion("2.0")
	require.NoError(t, err)
	require.Equal(t, "2.0", v)

	for _, bad := range []string{"2.1", "1.0", "", "2"} {
		_, err := CheckVersion(bad)
		var de *DecodeError
		require.True(t, errors.As(err, &de), bad)
		require.Equal(t, ReasonValue, de.Reason)
		require.Equal(t, "jsonrpc", de.Field)
	}
}

func TestVersionOnEnvelopes(t *testing.T) {
	tests := []struct {
		name   string
		member string
		reason Reason
		ok     bool
	}{
		{"string 2.0", `"jsonrpc":"2.0",`, 0, true},
		{"string 2.1", `"jsonrpc":"2.1",`, ReasonValue, false},
		{"number 2.0", `"jsonrpc":2.0,`, ReasonType, false},
		{"null", `"jsonrpc":null,`, ReasonType, false},
		{"missing", ``, ReasonMissing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoders := map[string]func() error{
				"request": func() error {
					_, err := DecodeRequest([]byte(`{` + tt.member + `"method":"subtract","id":2}`))
					return err
				},
				"notification": func() error {
					_, err := DecodeNotification([]byte(`{` + tt.member + `"method":"subtract"}`))
					return err
				},
				"response": func() error {
					_, err := DecodeResponse([]byte(`{` + tt.member + `"result":1,"id":2}`))
					return err
				},
			}
			for kind, decode := range decoders {
				err := decode()
				if tt.ok {
					require.NoError(t, err, kind)
					continue
				}
				var de *DecodeError
				require.True(t, errors.As(err, &de), kind)
				require.Equal(t, "jsonrpc", de.Field, kind)
				require.Equal(t, tt.reason, de.Reason, kind)
			}
		})
	}
}
