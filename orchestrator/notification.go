package orchestrator

import (
	"sync"
	"time"
)

type Kind int

const (
	KindSuccess Kind = iota
	KindError
)

type Notification struct {
	Message string
	Kind    Kind
}

// DefaultDismissAfter is how long a notification stays visible before it
// dismisses itself.
const DefaultDismissAfter = 5 * time.Second

// Center holds the single visible notification. Showing a new one
// replaces the current one and cancels its pending auto-dismiss, so a
// stale timer never clears a newer notification.
type Center struct {
	DismissAfter time.Duration

	mu      sync.Mutex
	current *Notification
	timer   *time.Timer
	seq     uint64
}

func NewCenter() *Center {
	return &Center{DismissAfter: DefaultDismissAfter}
}

func (c *Center) Show(message string, kind Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}
	c.seq++
	seq := c.seq
	c.current = &Notification{Message: message, Kind: kind}
	c.timer = time.AfterFunc(c.DismissAfter, func() {
		c.dismissIfCurrent(seq)
	})
}

// Dismiss hides the notification immediately.
func (c *Center) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.current = nil
}

// Current returns the visible notification, if any.
func (c *Center) Current() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return Notification{}, false
	}
	return *c.current, true
}

func (c *Center) dismissIfCurrent(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A newer notification replaced this one before the timer fired.
	if seq != c.seq {
		return
	}
	c.current = nil
	c.timer = nil
}
