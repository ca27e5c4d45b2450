package jsonrpc

// Message is one of Request, Notification or Response.
type Message interface {
	message()
}

// DecodeMessage parses data and returns whichever envelope it holds. A
// "method" member makes it a call, an "id" member then makes that call a
// Request; otherwise a "result" or "error" member makes it a Response.
func DecodeMessage(data []byte, opts ...Option) (Message, error) {
	o := newOptions(opts)
	m, err := parseObject(data, "")
	if err != nil {
		return nil, err
	}
	_, hasMethod := m["method"]
	_, hasID := m["id"]
	_, hasResult := m["result"]
	_, hasError := m["error"]
	switch {
	case hasMethod && hasID:
		r, err := requestFromMembers(m)
		if err != nil {
			return nil, err
		}
		o.adviseID("request", r.ID)
		return r, nil
	case hasMethod:
		n, err := notificationFromMembers(m)
		if err != nil {
			return nil, err
		}
		return n, nil
	case hasResult || hasError:
		r, err := responseFromMembers(m)
		if err != nil {
			return nil, err
		}
		o.adviseID("response", r.ID)
		return r, nil
	}
	return nil, decodeErr("", ReasonShape, "message is neither a request, a notification nor a response")
}
