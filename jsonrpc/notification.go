package jsonrpc

// Notification is a JSON-RPC call without an id. No Response is sent for it.
type Notification struct {
	Method string
	Params *Params
}

type wireNotification struct {
	JSONRPC string  `json:"jsonrpc"`
	Method  string  `json:"method"`
	Params  *Params `json:"params,omitempty"`
}

func (Notification) message() {}

// DecodeNotification parses and validates a Notification. A message with an
// "id" member is a Request and is rejected.
func DecodeNotification(data []byte) (Notification, error) {
	m, err := parseObject(data, "")
	if err != nil {
		return Notification{}, err
	}
	return notificationFromMembers(m)
}

func notificationFromMembers(m members) (Notification, error) {
	if err := decodeVersion(m); err != nil {
		return Notification{}, err
	}
	method, params, err := decodeCall(m)
	if err != nil {
		return Notification{}, err
	}
	if _, ok := m["id"]; ok {
		return Notification{}, decodeErr("id", ReasonShape, "notification must not have an id")
	}
	return Notification{Method: method, Params: params}, nil
}

func (n Notification) Encode() ([]byte, error) {
	return marshal(n)
}

func (n Notification) MarshalJSON() ([]byte, error) {
	if n.Method == "" {
		return nil, errEmptyMethod
	}
	return marshal(wireNotification{
		JSONRPC: Version,
		Method:  n.Method,
		Params:  n.Params,
	})
}

func (n *Notification) UnmarshalJSON(data []byte) error {
	m, err := parseObject(data, "")
	if err != nil {
		return err
	}
	v, err := notificationFromMembers(m)
	if err != nil {
		return err
	}
	*n = v
	return nil
}
