package jsonrpc

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestZerologAdvisor(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	_, err := DecodeRequest([]byte(`{"jsonrpc":"2.0","method":"m","id":null}`), WithAdvisor(ZerologAdvisor(log)))
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "request", entry["envelope"])
	require.Equal(t, "id", entry["field"])
	require.Equal(t, "null", entry["id"])
	require.Contains(t, entry["message"], "null id")
}

func TestZerologAdvisorRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.ErrorLevel)

	_, err := DecodeResponse([]byte(`{"jsonrpc":"2.0","id":1.5,"result":1}`), WithAdvisor(ZerologAdvisor(log)))
	require.NoError(t, err)
	require.Zero(t, buf.Len())
}

func TestWithNilAdvisorUsesDefault(t *testing.T) {
	_, err := DecodeRequest([]byte(`{"jsonrpc":"2.0","method":"m","id":null}`), WithAdvisor(nil))
	require.NoError(t, err)
}

func TestAdvisoriesDoNotAffectOutcome(t *testing.T) {
	calls := 0
	adv := WithAdvisor(AdvisorFunc(func(Advisory) { calls++ }))

	_, err := DecodeRequest([]byte(`{"jsonrpc":"2.0","method":"m","id":{}}`), adv)
	require.Error(t, err)
	require.Zero(t, calls)
}
