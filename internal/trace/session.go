package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Span names for session transitions.
const (
	SpanLogin  = "session.login"
	SpanLogout = "session.logout"
)

// Attribute keys recorded on session spans.
const (
	AttrFrom    = attribute.Key("loginbox.session.from")
	AttrTo      = attribute.Key("loginbox.session.to")
	AttrChanged = attribute.Key("loginbox.session.changed")
	AttrSource  = attribute.Key("loginbox.session.source")
	AttrUnread  = attribute.Key("loginbox.mailbox.unread")
)

// Transition describes one handled login or logout request.
type Transition struct {
	From   bool   // logged in before
	To     bool   // logged in after
	Source string // "button", "shortcut" or "api"
	Unread int    // messages visible after the transition
}

// Changed reports whether the session flag actually flipped.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// StateName maps the login flag to the value used in spans and logs.
func StateName(loggedIn bool) string {
	if loggedIn {
		return "logged_in"
	}
	return "logged_out"
}

// SessionRecorder records one span per session transition.
type SessionRecorder struct {
	tracer oteltrace.Tracer
}

// NewSessionRecorder creates a recorder on the provider's tracer.
func NewSessionRecorder(p *Provider) *SessionRecorder {
	return &SessionRecorder{tracer: p.Tracer()}
}

// Record emits a span for t. Safe on a nil recorder.
func (r *SessionRecorder) Record(ctx context.Context, t Transition) {
	if r == nil {
		return
	}
	name := SpanLogout
	if t.To {
		name = SpanLogin
	}
	_, span := r.tracer.Start(ctx, name,
		oteltrace.WithSpanKind(oteltrace.SpanKindInternal),
		oteltrace.WithAttributes(
			AttrFrom.String(StateName(t.From)),
			AttrTo.String(StateName(t.To)),
			AttrChanged.Bool(t.Changed()),
			AttrSource.String(t.Source),
			AttrUnread.Int(t.Unread),
		),
	)
	span.End()
}
