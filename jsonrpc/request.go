package jsonrpc

import "errors"

// Request is a JSON-RPC call that expects a Response.
type Request struct {
	Method string
	// Params is nil when the request carries no params.
	Params *Params
	ID     ID
}

type wireRequest struct {
	JSONRPC string  `json:"jsonrpc"`
	Method  string  `json:"method"`
	Params  *Params `json:"params,omitempty"`
	ID      ID      `json:"id"`
}

func (Request) message() {}

// DecodeRequest parses and validates a Request.
func DecodeRequest(data []byte, opts ...Option) (Request, error) {
	o := newOptions(opts)
	m, err := parseObject(data, "")
	if err != nil {
		return Request{}, err
	}
	r, err := requestFromMembers(m)
	if err != nil {
		return Request{}, err
	}
	o.adviseID("request", r.ID)
	return r, nil
}

func requestFromMembers(m members) (Request, error) {
	if err := decodeVersion(m); err != nil {
		return Request{}, err
	}
	method, params, err := decodeCall(m)
	if err != nil {
		return Request{}, err
	}
	v, ok := m["id"]
	if !ok {
		return Request{}, decodeErr("id", ReasonMissing, "required member is missing")
	}
	id, err := decodeID(v)
	if err != nil {
		return Request{}, err
	}
	return Request{Method: method, Params: params, ID: id}, nil
}

// decodeCall reads the members shared by requests and notifications.
func decodeCall(m members) (string, *Params, error) {
	method, err := stringMember(m, "method", "method")
	if err != nil {
		return "", nil, err
	}
	if method == "" {
		return "", nil, decodeErr("method", ReasonValue, "method must not be empty")
	}
	v, ok := m["params"]
	if !ok {
		return method, nil, nil
	}
	p, err := decodeParams(v)
	if err != nil {
		return "", nil, err
	}
	return method, &p, nil
}

var errEmptyMethod = errors.New("jsonrpc: method must not be empty")

// Encode returns the wire form of the request.
func (r Request) Encode() ([]byte, error) {
	return marshal(r)
}

func (r Request) MarshalJSON() ([]byte, error) {
	if r.Method == "" {
		return nil, errEmptyMethod
	}
	return marshal(wireRequest{
		JSONRPC: Version,
		Method:  r.Method,
		Params:  r.Params,
		ID:      r.ID,
	})
}

func (r *Request) UnmarshalJSON(data []byte) error {
	m, err := parseObject(data, "")
	if err != nil {
		return err
	}
	v, err := requestFromMembers(m)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
