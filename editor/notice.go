// ABOUTME: Non-fatal user-facing notifications raised by session operations
// ABOUTME: Keeps a bounded, ordered list that surfaces drain and display
package editor

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

const maxNotices = 20

type Notice struct {
	ID      string    `json:"id"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notices is safe for concurrent use; the file watcher posts from its own
// goroutine.
type Notices struct {
	mu    sync.Mutex
	items []Notice
}

func (n *Notices) push(level Level, message string) Notice {
	now := time.Now()
	notice := Notice{
		ID:      ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		Level:   level,
		Message: message,
		At:      now,
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.items = append(n.items, notice)
	if len(n.items) > maxNotices {
		n.items = n.items[len(n.items)-maxNotices:]
	}
	return notice
}

func (n *Notices) Info(message string) Notice { return n.push(LevelInfo, message) }

func (n *Notices) Error(message string) Notice { return n.push(LevelError, message) }

// List returns pending notices, oldest first.
func (n *Notices) List() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notice{}, n.items...)
}

// Drain returns pending notices and clears them.
func (n *Notices) Drain() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	items := n.items
	n.items = nil
	return items
}

// Dismiss removes one notice by id.
func (n *Notices) Dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, item := range n.items {
		if item.ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return
		}
	}
}
