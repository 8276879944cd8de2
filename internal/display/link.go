// Package display renders battle snapshots sent from a running simulation.
// The simulation side never waits on a viewer and never hears back from it.
package display

import (
	"fmt"
	"sync"
	"time"

	"goblinwars/internal/combat"
)

// Update is one message on a Link: a map snapshot, a status line, or both.
// Map is always a clone owned by the receiver.
type Update struct {
	Round  int
	Map    *combat.Map
	Status string
	Done   bool
}

// Link is a one-way mailbox from the simulation to a viewer. Sends never
// block: when the buffer is full the oldest pending update is dropped.
// After Close every send is ignored.
type Link struct {
	mu     sync.Mutex
	ch     chan Update
	closed bool
}

func NewLink(buffer int) *Link {
	if buffer < 1 {
		buffer = 1
	}
	return &Link{ch: make(chan Update, buffer)}
}

func (l *Link) Updates() <-chan Update { return l.ch }

func (l *Link) Send(u Update) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	for {
		select {
		case l.ch <- u:
			return
		default:
		}
		select {
		case <-l.ch:
		default:
		}
	}
}

func (l *Link) Message(format string, args ...any) {
	l.Send(Update{Status: fmt.Sprintf(format, args...)})
}

func (l *Link) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

// Close is called by whichever side goes away first. It is safe to call
// more than once.
func (l *Link) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.closed {
		l.closed = true
		close(l.ch)
	}
}

// Worker runs the battle to the end, sending a snapshot before every round
// and the final map with the result. delay paces playback while a viewer
// is attached.
func Worker(b *combat.Battle, link *Link, delay time.Duration) (combat.RunOutcome, error) {
	out, err := b.Run(func(b *combat.Battle, round int) error {
		link.Send(Update{
			Round:  round - 1,
			Map:    b.Map().Clone(),
			Status: fmt.Sprintf("round %d", round),
		})
		if delay > 0 && !link.Closed() {
			time.Sleep(delay)
		}
		return nil
	})
	final := Update{Round: b.Rounds(), Map: b.Map().Clone(), Done: true}
	if err != nil {
		final.Status = err.Error()
	} else {
		final.Status = out.String()
	}
	link.Send(final)
	return out, err
}

// Delay maps a playback speed of 1..5 to the pause between rounds.
func Delay(speed int) time.Duration {
	speed = min(max(speed, 1), 5)
	return time.Duration(500-(speed-1)*100) * time.Millisecond
}
