package jsonrpc

import "github.com/rs/zerolog"

// Advisory describes a value that is legal but discouraged, such as a null
// id on a Request or a fractional id.
type Advisory struct {
	// Envelope is "request" or "response".
	Envelope string
	Field    string
	ID       ID
	Message  string
}

// Advisor receives advisories. Advisories never change the outcome of a
// decode or build.
type Advisor interface {
	Advise(a Advisory)
}

// AdvisorFunc adapts a function to an Advisor.
type AdvisorFunc func(a Advisory)

func (f AdvisorFunc) Advise(a Advisory) {
	f(a)
}

// NopAdvisor discards advisories. It is the default.
var NopAdvisor Advisor = AdvisorFunc(func(Advisory) {})

type zerologAdvisor struct {
	log zerolog.Logger
}

// ZerologAdvisor logs advisories as warnings on log.
func ZerologAdvisor(log zerolog.Logger) Advisor {
	return zerologAdvisor{log: log}
}

func (z zerologAdvisor) Advise(a Advisory) {
	z.log.Warn().
		Str("envelope", a.Envelope).
		Str("field", a.Field).
		Stringer("id", a.ID).
		Msg(a.Message)
}

type options struct {
	advisor Advisor
}

// Option configures decoding and building.
type Option func(*options)

// WithAdvisor sets the sink for advisories. A nil advisor restores the
// default.
func WithAdvisor(a Advisor) Option {
	return func(o *options) {
		o.advisor = a
	}
}

func newOptions(opts []Option) options {
	o := options{advisor: NopAdvisor}
	for _, opt := range opts {
		opt(&o)
	}
	if o.advisor == nil {
		o.advisor = NopAdvisor
	}
	return o
}

// adviseID reports discouraged ids. Null is only discouraged on requests.
func (o options) adviseID(envelope string, id ID) {
	if o.advisor == nil {
		return
	}
	switch {
	case id.kind == IDNull && envelope == "request":
		o.advisor.Advise(Advisory{
			Envelope: envelope,
			Field:    "id",
			ID:       id,
			Message:  "null id on a request is discouraged; it is reserved for responses to unidentifiable requests",
		})
	case id.kind == IDFractional:
		o.advisor.Advise(Advisory{
			Envelope: envelope,
			Field:    "id",
			ID:       id,
			Message:  "fractional id is discouraged; many decimal fractions have no exact binary representation",
		})
	}
}
