package tui

import (
	"sync"

	"github.com/mmcdole/barback/internal/adapter"
	"github.com/mmcdole/barback/internal/domain"
	"github.com/mmcdole/barback/internal/service"
)

// Updates queues state transitions for the Bubble Tea loop. It holds at most
// one pending message per screen: a newer transition replaces the queued one,
// so publishing never blocks and the latest state of a screen is never lost.
type Updates struct {
	mu      sync.Mutex
	pending map[adapter.ScreenName]StateChangedMsg
	order   []adapter.ScreenName // screens with a pending message, oldest first
	ready   chan struct{}
}

// NewUpdates creates an empty queue
func NewUpdates() *Updates {
	return &Updates{
		pending: make(map[adapter.ScreenName]StateChangedMsg),
		ready:   make(chan struct{}, 1),
	}
}

// Push queues msg, replacing any message still pending for the same screen
func (u *Updates) Push(msg StateChangedMsg) {
	u.mu.Lock()
	if _, queued := u.pending[msg.Screen]; !queued {
		u.order = append(u.order, msg.Screen)
	}
	u.pending[msg.Screen] = msg
	u.mu.Unlock()

	select {
	case u.ready <- struct{}{}:
	default: // a wakeup is already pending
	}
}

// Next blocks until a message is queued and returns the oldest one
func (u *Updates) Next() StateChangedMsg {
	for {
		if msg, ok := u.pop(); ok {
			return msg
		}
		<-u.ready
	}
}

// Len returns the number of screens with a pending message
func (u *Updates) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.order)
}

func (u *Updates) pop() (StateChangedMsg, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.order) == 0 {
		return StateChangedMsg{}, false
	}
	screen := u.order[0]
	u.order = u.order[1:]
	msg := u.pending[screen]
	delete(u.pending, screen)
	return msg, true
}

// ScreenObserver adapts domain.StateObserver to the Updates queue.
type ScreenObserver[T domain.Item] struct {
	screen  adapter.ScreenName
	updates *Updates
}

// NewScreenObserver creates an observer publishing for screen.
func NewScreenObserver[T domain.Item](screen adapter.ScreenName, updates *Updates) *ScreenObserver[T] {
	return &ScreenObserver[T]{screen: screen, updates: updates}
}

// OnState queues the transition.
func (o *ScreenObserver[T]) OnState(state domain.State[T]) {
	msg := StateChangedMsg{
		Screen:  o.screen,
		Status:  state.Status,
		Message: state.Message,
	}
	if state.Status == domain.StatusLoaded {
		msg.Items = make([]domain.Item, len(state.Items))
		for i, item := range state.Items {
			msg.Items[i] = item
		}
	}
	o.updates.Push(msg)
}

// Bind subscribes screen to catalog's transitions and returns the
// unsubscribe function.
func Bind[T domain.Item](catalog *service.Catalog[T], screen adapter.ScreenName, updates *Updates) func() {
	return catalog.Subscribe(NewScreenObserver[T](screen, updates))
}
