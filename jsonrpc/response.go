package jsonrpc

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/tidwall/gjson"
)

// Status is the outcome carried by a Response: either Success or Error.
type Status interface {
	status()
}

// Success is a successful outcome. A nil Result is written as JSON null.
type Success struct {
	Result json.RawMessage
}

func (Success) status() {}

// Response answers a Request.
type Response struct {
	ID     ID
	Status Status
}

type wireResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      ID              `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *wireError      `json:"error,omitempty"`
}

type wireError struct {
	Code    int32           `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

var nullJSON = json.RawMessage("null")

func (Response) message() {}

// IsError reports whether the response carries an error.
func (r Response) IsError() bool {
	_, ok := r.ErrorObject()
	return ok
}

// Result returns the result of a successful response.
func (r Response) Result() (json.RawMessage, bool) {
	switch s := r.Status.(type) {
	case Success:
		return resultOrNull(s.Result), true
	case *Success:
		if s != nil {
			return resultOrNull(s.Result), true
		}
	}
	return nil, false
}

// ErrorObject returns the error of an error response.
func (r Response) ErrorObject() (Error, bool) {
	switch s := r.Status.(type) {
	case Error:
		return s, true
	case *Error:
		if s != nil {
			return *s, true
		}
	}
	return Error{}, false
}

// Err returns the response error as an error value, or nil on success.
func (r Response) Err() error {
	if e, ok := r.ErrorObject(); ok {
		return e
	}
	return nil
}

func resultOrNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return nullJSON
	}
	return raw
}

// DecodeResponse parses and validates a Response.
func DecodeResponse(data []byte, opts ...Option) (Response, error) {
	o := newOptions(opts)
	m, err := parseObject(data, "")
	if err != nil {
		return Response{}, err
	}
	r, err := responseFromMembers(m)
	if err != nil {
		return Response{}, err
	}
	o.adviseID("response", r.ID)
	return r, nil
}

func responseFromMembers(m members) (Response, error) {
	if err := decodeVersion(m); err != nil {
		return Response{}, err
	}
	v, ok := m["id"]
	if !ok {
		return Response{}, decodeErr("id", ReasonMissing, "required member is missing")
	}
	id, err := decodeID(v)
	if err != nil {
		return Response{}, err
	}
	status, err := decodeStatus(m)
	if err != nil {
		return Response{}, err
	}
	return Response{ID: id, Status: status}, nil
}

// decodeStatus uses the presence of "result" or "error" as the discriminant.
func decodeStatus(m members) (Status, error) {
	result, hasResult := m["result"]
	errv, hasError := m["error"]
	switch {
	case hasResult && !hasError:
		raw, err := compact(result.Raw)
		if err != nil {
			return nil, &DecodeError{Field: "result", Reason: ReasonSyntax, Detail: "malformed JSON", Err: err}
		}
		return Success{Result: raw}, nil
	case hasError && !hasResult:
		return decodeErrorObject(errv)
	}
	return nil, decodeErr("", ReasonShape, "response must have exactly one of result/error")
}

func decodeErrorObject(v gjson.Result) (Error, error) {
	m, err := objectMembers(v, "error")
	if err != nil {
		return Error{}, err
	}
	cv, ok := m["code"]
	if !ok {
		return Error{}, decodeErr("error.code", ReasonMissing, "required member is missing")
	}
	if cv.Type != gjson.Number || isFractionLiteral(cv.Raw) {
		return Error{}, decodeErr("error.code", ReasonType, "expected integer, got %s %s", kindOf(cv), cv.Raw)
	}
	code, err := strconv.ParseInt(cv.Raw, 10, 32)
	if err != nil {
		return Error{}, decodeErr("error.code", ReasonValue, "code %s out of range", cv.Raw)
	}
	msg, err := stringMember(m, "message", "error.message")
	if err != nil {
		return Error{}, err
	}
	e := Error{Code: int32(code), Message: msg}
	if dv, ok := m["data"]; ok {
		e.Data, err = compact(dv.Raw)
		if err != nil {
			return Error{}, &DecodeError{Field: "error.data", Reason: ReasonSyntax, Detail: "malformed JSON", Err: err}
		}
	}
	return e, nil
}

var errNoStatus = errors.New("jsonrpc: response has no status")

func (r Response) Encode() ([]byte, error) {
	return marshal(r)
}

func (r Response) MarshalJSON() ([]byte, error) {
	w := wireResponse{JSONRPC: Version, ID: r.ID}
	if res, ok := r.Result(); ok {
		w.Result = res
	} else if e, ok := r.ErrorObject(); ok {
		w.Error = &wireError{Code: e.Code, Message: e.Message, Data: e.Data}
	} else {
		return nil, errNoStatus
	}
	return marshal(w)
}

func (r *Response) UnmarshalJSON(data []byte) error {
	m, err := parseObject(data, "")
	if err != nil {
		return err
	}
	v, err := responseFromMembers(m)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
