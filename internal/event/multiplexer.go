// Package event merges the redraw clock and terminal input into one ordered stream.
package event

import (
	"context"
	"sync"
	"time"

	"tinyd/internal/types"
)

// DefaultTickRate drives roughly 30 draws per second.
const DefaultTickRate = 33 * time.Millisecond

// InputSource yields raw terminal notifications. ReadInput blocks until a key
// press or resize is available and returns an error once the source is gone.
type InputSource interface {
	ReadInput(ctx context.Context) (types.Event, error)
}

// Multiplexer merges clock ticks, terminal input and controller commands.
// Production runs in background goroutines; a single consumer calls Next.
type Multiplexer struct {
	ctx    context.Context
	cancel context.CancelFunc

	src      InputSource
	tickRate time.Duration

	mu         sync.Mutex
	queue      []types.Event
	tickQueued bool
	closed     bool
	err        error
	notify     chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewMultiplexer returns a multiplexer over src. Nothing is read until Start.
// A non-positive tickRate falls back to DefaultTickRate
func NewMultiplexer(parent context.Context, src InputSource, tickRate time.Duration) *Multiplexer {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	ctx, cancel := context.WithCancel(parent)
	return &Multiplexer{
		ctx:      ctx,
		cancel:   cancel,
		src:      src,
		tickRate: tickRate,
		notify:   make(chan struct{}, 1),
	}
}

// Start launches the clock and input producers.
func (m *Multiplexer) Start() {
	m.startOnce.Do(func() {
		m.wg.Add(2)
		go m.clock()
		go m.input()
	})
}

// Stop ends production and waits for the producers to exit.
// Events already queued may still be returned by Next.
func (m *Multiplexer) Stop() {
	m.stopOnce.Do(func() {
		m.finish(nil)
		m.wg.Wait()
	})
}

// Err returns the input failure that ended production, if any.
func (m *Multiplexer) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Send enqueues a command without blocking. Commands keep their send order
// relative to each other.
func (m *Multiplexer) Send(cmd types.AppCommand) {
	m.push(types.CommandEvent(cmd))
}

// Next blocks until an event is available. It returns false once production
// has ended and the queue is drained, or when ctx is done.
func (m *Multiplexer) Next(ctx context.Context) (types.Event, bool) {
	for {
		m.mu.Lock()
		if len(m.queue) > 0 {
			ev := m.queue[0]
			m.queue[0] = types.Event{}
			m.queue = m.queue[1:]
			if ev.Kind == types.EventTick {
				m.tickQueued = false
			}
			m.mu.Unlock()
			return ev, true
		}
		if m.closed {
			m.mu.Unlock()
			return types.Event{}, false
		}
		m.mu.Unlock()

		select {
		case <-m.notify:
		case <-ctx.Done():
			return types.Event{}, false
		}
	}
}

func (m *Multiplexer) push(ev types.Event) {
	m.mu.Lock()
	if ev.Kind == types.EventTick {
		// A consumer stalled on a daemon call needs one redraw, not a backlog.
		if m.tickQueued || m.closed {
			m.mu.Unlock()
			return
		}
		m.tickQueued = true
	}
	m.queue = append(m.queue, ev)
	m.mu.Unlock()
	m.wake()
}

func (m *Multiplexer) wake() {
	select {
	case m.notify <- struct{}{}:
	default:
	}
}

// finish stops production. The first input error is kept for Err.
func (m *Multiplexer) finish(err error) {
	m.mu.Lock()
	if !m.closed {
		m.closed = true
		m.err = err
	}
	m.mu.Unlock()
	m.cancel()
	m.wake()
}

func (m *Multiplexer) clock() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.tickRate)
	defer ticker.Stop()
	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.push(types.TickEvent())
		}
	}
}

func (m *Multiplexer) input() {
	defer m.wg.Done()

	for {
		ev, err := m.src.ReadInput(m.ctx)
		if err != nil {
			if m.ctx.Err() != nil {
				err = nil
			}
			m.finish(err)
			return
		}
		m.mu.Lock()
		closed := m.closed
		m.mu.Unlock()
		if closed {
			return
		}
		m.push(ev)
	}
}
