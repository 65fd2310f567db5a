// Package notify delivers user-visible notifications raised by the console
// controllers.
package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Level classifies a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notifier shows short messages to the operator.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// Notification is a single delivered message.
type Notification struct {
	Level   Level
	Message string
}

// ---------------------------------------------------------------------------
// SlogNotifier
// ---------------------------------------------------------------------------

// SlogNotifier writes notifications to a structured logger: success at INFO,
// errors at WARN.
type SlogNotifier struct {
	log *slog.Logger
}

func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{log: logger.With("component", "notify")}
}

func (n *SlogNotifier) Success(ctx context.Context, msg string) {
	n.log.InfoContext(ctx, msg, slog.String("kind", string(LevelSuccess)))
}

func (n *SlogNotifier) Error(ctx context.Context, msg string) {
	n.log.WarnContext(ctx, msg, slog.String("kind", string(LevelError)))
}

// ---------------------------------------------------------------------------
// Recorder
// ---------------------------------------------------------------------------

// Recorder keeps notifications in memory, optionally forwarding them to
// another Notifier. It is safe for concurrent use.
type Recorder struct {
	next Notifier

	mu    sync.Mutex
	items []Notification
}

// NewRecorder creates a Recorder. next may be nil.
func NewRecorder(next Notifier) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) Success(ctx context.Context, msg string) {
	r.record(ctx, LevelSuccess, msg)
}

func (r *Recorder) Error(ctx context.Context, msg string) {
	r.record(ctx, LevelError, msg)
}

func (r *Recorder) record(ctx context.Context, level Level, msg string) {
	r.mu.Lock()
	r.items = append(r.items, Notification{Level: level, Message: msg})
	r.mu.Unlock()

	if r.next == nil {
		return
	}
	switch level {
	case LevelSuccess:
		r.next.Success(ctx, msg)
	case LevelError:
		r.next.Error(ctx, msg)
	}
}

// All returns a copy of every recorded notification in delivery order.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.items...)
}

// Errors returns the messages of recorded error notifications.
func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var msgs []string
	for _, n := range r.items {
		if n.Level == LevelError {
			msgs = append(msgs, n.Message)
		}
	}
	return msgs
}

// Reset drops every recorded notification.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.items = nil
	r.mu.Unlock()
}
