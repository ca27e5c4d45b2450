package jsonrpc

// Notification builder states: Method moves NotificationBuilder to
// NotificationReady, which alone has Build.
type (
	NotificationBuilder struct{ c notificationCore }
	NotificationReady   struct{ c notificationCore }
)

type notificationCore struct {
	method string
	params *Params
}

func NewNotificationBuilder() NotificationBuilder {
	return NotificationBuilder{}
}

func (c notificationCore) withParams(p Params, err error) (notificationCore, error) {
	if err != nil {
		return c, err
	}
	c.params = &p
	return c, nil
}

func (b NotificationBuilder) Method(m string) NotificationReady {
	b.c.method = m
	return NotificationReady(b)
}

func (b NotificationBuilder) Params(v any) (NotificationBuilder, error) {
	c, err := b.c.withParams(NewParams(v))
	return NotificationBuilder{c}, err
}

func (b NotificationBuilder) ParamsJSON(text string) (NotificationBuilder, error) {
	c, err := b.c.withParams(ParseParams(text))
	return NotificationBuilder{c}, err
}

func (b NotificationReady) Params(v any) (NotificationReady, error) {
	c, err := b.c.withParams(NewParams(v))
	return NotificationReady{c}, err
}

func (b NotificationReady) ParamsJSON(text string) (NotificationReady, error) {
	c, err := b.c.withParams(ParseParams(text))
	return NotificationReady{c}, err
}

func (b NotificationReady) Build() Notification {
	return Notification{Method: b.c.method, Params: b.c.params}
}
