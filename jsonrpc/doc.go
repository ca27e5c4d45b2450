// Package jsonrpc models JSON-RPC 2.0 message objects (https://www.jsonrpc.org/specification).
//
// It decodes untrusted JSON text into validated Request, Notification and
// Response values, encodes them back to exact wire JSON, and builds new
// messages through staged builders that cannot omit a required member.
// It does not transport, dispatch or execute anything.
//
// # Decoding
//
//	req, err := jsonrpc.DecodeRequest([]byte(`{"jsonrpc":"2.0","method":"subtract","params":[42,23],"id":1}`))
//	if err != nil {
//	    var de *jsonrpc.DecodeError
//	    if errors.As(err, &de) {
//	        log.Printf("bad %s: %s", de.Field, de.Reason)
//	    }
//	}
//
// DecodeMessage accepts any of the three envelopes and reports which one it
// found. Every decode failure is a *DecodeError and matches
// ErrInvalidMessage.
//
// # Ids
//
// An ID is a string, an integer, a fractional number or null. Conversions
// never coerce: AsInt on a fractional ID fails with a *TypeError. A number
// literal written with a fraction or exponent ("2.0", "1e3") decodes as
// fractional; one without decodes as an integer. Fractional ids are always
// written with a fraction, so both variants survive a round trip.
//
// # Building
//
// Each builder is a chain of distinct types. A required setter only exists
// on the states where its field is still unset, and Build only exists on the
// final state, so an incomplete message does not compile:
//
//	req := jsonrpc.NewRequestBuilder().
//	    Method("subtract").
//	    ID(jsonrpc.IntID(1)).
//	    Build()
//
//	resp := jsonrpc.NewResponseBuilder().
//	    ID(req.ID).
//	    Error().
//	    InvalidParams().
//	    Build()
//
// Optional setters (Params, Result, Data) return the same state and an
// error; on error the returned builder is unchanged. Builder values are
// copied at every step, so an earlier stage can be reused freely.
//
// # Advisories
//
// A null id on a Request and a fractional id are legal but discouraged.
// Pass WithAdvisor to the decode functions or builder constructors to be
// told about them; ZerologAdvisor logs them as warnings. The default
// discards them.
package jsonrpc
