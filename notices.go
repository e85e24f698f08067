package portal

import (
	"context"
	"time"
)

// NoticeKind enumerates the user-facing failure classifications.
type NoticeKind string

const (
	NoticeSessionExpired NoticeKind = "auth.session.expired"
	NoticeForbidden      NoticeKind = "request.forbidden"
	NoticeNotFound       NoticeKind = "request.not_found"
	NoticeServerError    NoticeKind = "request.server_error"
	NoticeRequestFailed  NoticeKind = "request.failed"
	NoticeNetworkError   NoticeKind = "request.network_error"
)

// Notice is a human-readable message the request pipeline emits alongside a
// rejected call. The wording is presentation; the Kind and its triggering
// condition are contract.
type Notice struct {
	Kind       NoticeKind
	Message    string
	Status     int
	OccurredAt time.Time
}

// NoticeSink consumes notices for display. Sinks run best-effort: a sink
// error is logged and never blocks the failing call from being re-raised.
type NoticeSink interface {
	Notify(ctx context.Context, notice Notice) error
}

// NoticeSinkFunc adapts a function to the NoticeSink interface.
type NoticeSinkFunc func(ctx context.Context, notice Notice) error

// Notify implements NoticeSink.
func (f NoticeSinkFunc) Notify(ctx context.Context, notice Notice) error {
	if f == nil {
		return nil
	}
	return f(ctx, notice)
}

type noopNoticeSink struct{}

func (noopNoticeSink) Notify(context.Context, Notice) error {
	return nil
}

func normalizeNoticeSink(s NoticeSink) NoticeSink {
	if s == nil {
		return noopNoticeSink{}
	}
	return s
}
