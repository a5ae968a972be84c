// Package notify implements the user-facing notification feed. Emission
// never blocks; each message expires a fixed time after it was emitted and
// expired messages are pruned when the feed is read.
package notify

import (
	"sync"
	"time"

	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/ident"
	"go.uber.org/zap"
)

const (
	SeveritySuccess = "success"
	SeverityError   = "error"
)

// TTL is how long a notification stays visible.
const TTL = 5 * time.Second

type Notification struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Severity string    `json:"severity"`
	ExpireAt time.Time `json:"expireAt"`
}

type Emitter struct {
	mu      sync.Mutex
	pending []Notification
	log     *zap.Logger
	now     func() time.Time
}

func NewEmitter(logger *zap.Logger) *Emitter {
	return &Emitter{log: logger, now: time.Now}
}

// Notify queues a message for the UI. It never fails; an unmounted UI just
// never reads the message before it expires.
func (e *Emitter) Notify(text, severity string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := Notification{
		ID:       ident.New(),
		Text:     text,
		Severity: severity,
		ExpireAt: e.now().Add(TTL),
	}
	e.pending = append(e.pending, n)
	e.log.Debug("notification emitted", zap.String("severity", severity), zap.String("text", text))
}

// Active returns the not-yet-expired notifications, oldest first, and drops
// the expired ones.
func (e *Emitter) Active() []Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()
	live := e.pending[:0]
	for _, n := range e.pending {
		if n.ExpireAt.After(now) {
			live = append(live, n)
		}
	}
	e.pending = live
	out := make([]Notification, len(live))
	copy(out, live)
	return out
}
