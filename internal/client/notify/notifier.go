// Package notify is the toast-style feedback channel: fire-and-forget
// success/error lines that never block the caller and auto-dismiss after a
// fixed interval.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one visible toast. Several may be visible at once until
// their TTL expires.
type Notification struct {
	ID      string
	Level   Level
	Message string
	shownAt time.Time
}

// Notifier writes notifications to out as they arrive and keeps them listed
// as "visible" for the configured TTL. now is replaceable for tests.
type Notifier struct {
	mu     sync.Mutex
	out    io.Writer
	ttl    time.Duration
	active []Notification
	now    func() time.Time
}

func NewNotifier(out io.Writer, ttl time.Duration) *Notifier {
	return &Notifier{out: out, ttl: ttl, now: time.Now}
}

// Success surfaces a success outcome. Fire-and-forget.
func (n *Notifier) Success(message string) {
	n.publish(LevelSuccess, message)
}

// Error surfaces a failure outcome. Fire-and-forget.
func (n *Notifier) Error(message string) {
	n.publish(LevelError, message)
}

func (n *Notifier) publish(level Level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.pruneLocked()
	n.active = append(n.active, Notification{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
		shownAt: n.now(),
	})

	marker := "✔"
	if level == LevelError {
		marker = "✖"
	}
	fmt.Fprintf(n.out, "%s %s\n", marker, message)
}

// Active returns the notifications still within their display interval, in
// display order.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.pruneLocked()
	out := make([]Notification, len(n.active))
	copy(out, n.active)
	return out
}

func (n *Notifier) pruneLocked() {
	cutoff := n.now().Add(-n.ttl)
	kept := n.active[:0]
	for _, item := range n.active {
		if item.shownAt.After(cutoff) {
			kept = append(kept, item)
		}
	}
	n.active = kept
}
