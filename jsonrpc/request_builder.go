package jsonrpc

// Request builder states. Method and ID each move the builder to the state
// where that field is set; Build exists only on RequestReady.
//
//	RequestBuilder --Method--> RequestWithMethod --ID-----> RequestReady
//	RequestBuilder --ID------> RequestWithID     --Method-> RequestReady
type (
	RequestBuilder    struct{ c requestCore }
	RequestWithMethod struct{ c requestCore }
	RequestWithID     struct{ c requestCore }
	RequestReady      struct{ c requestCore }
)

type requestCore struct {
	method string
	id     ID
	params *Params
	o      options
}

// NewRequestBuilder starts building a Request. The zero RequestBuilder is
// equivalent to one built without options.
func NewRequestBuilder(opts ...Option) RequestBuilder {
	return RequestBuilder{c: requestCore{o: newOptions(opts)}}
}

func (c requestCore) withParams(p Params, err error) (requestCore, error) {
	if err != nil {
		return c, err
	}
	c.params = &p
	return c, nil
}

func (b RequestBuilder) Method(m string) RequestWithMethod {
	b.c.method = m
	return RequestWithMethod(b)
}

func (b RequestBuilder) ID(id ID) RequestWithID {
	b.c.id = id
	return RequestWithID(b)
}

// Params serializes v as the request params. It fails unless v encodes to a
// JSON array or object.
func (b RequestBuilder) Params(v any) (RequestBuilder, error) {
	c, err := b.c.withParams(NewParams(v))
	return RequestBuilder{c}, err
}

// ParamsJSON uses JSON text as the request params.
func (b RequestBuilder) ParamsJSON(text string) (RequestBuilder, error) {
	c, err := b.c.withParams(ParseParams(text))
	return RequestBuilder{c}, err
}

func (b RequestWithMethod) ID(id ID) RequestReady {
	b.c.id = id
	return RequestReady(b)
}

func (b RequestWithMethod) Params(v any) (RequestWithMethod, error) {
	c, err := b.c.withParams(NewParams(v))
	return RequestWithMethod{c}, err
}

func (b RequestWithMethod) ParamsJSON(text string) (RequestWithMethod, error) {
	c, err := b.c.withParams(ParseParams(text))
	return RequestWithMethod{c}, err
}

func (b RequestWithID) Method(m string) RequestReady {
	b.c.method = m
	return RequestReady(b)
}

func (b RequestWithID) Params(v any) (RequestWithID, error) {
	c, err := b.c.withParams(NewParams(v))
	return RequestWithID{c}, err
}

func (b RequestWithID) ParamsJSON(text string) (RequestWithID, error) {
	c, err := b.c.withParams(ParseParams(text))
	return RequestWithID{c}, err
}

func (b RequestReady) Params(v any) (RequestReady, error) {
	c, err := b.c.withParams(NewParams(v))
	return RequestReady{c}, err
}

func (b RequestReady) ParamsJSON(text string) (RequestReady, error) {
	c, err := b.c.withParams(ParseParams(text))
	return RequestReady{c}, err
}

func (b RequestReady) Build() Request {
	b.c.o.adviseID("request", b.c.id)
	return Request{Method: b.c.method, Params: b.c.params, ID: b.c.id}
}
