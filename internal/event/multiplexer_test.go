package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"tinyd/internal/types"
)

// chanSource replays events from a channel and fails once it is closed.
type chanSource struct {
	events chan types.Event
	err    error
}

func newChanSource() *chanSource {
	return &chanSource{events: make(chan types.Event, 16), err: errors.New("terminal closed")}
}

func (s *chanSource) ReadInput(ctx context.Context) (types.Event, error) {
	select {
	case ev, ok := <-s.events:
		if !ok {
			return types.Event{}, s.err
		}
		return ev, nil
	case <-ctx.Done():
		return types.Event{}, ctx.Err()
	}
}

func nextWithin(t *testing.T, m *Multiplexer, d time.Duration) (types.Event, bool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return m.Next(ctx)
}

func TestMultiplexerDeliversInput(t *testing.T) {
	src := newChanSource()
	m := NewMultiplexer(context.Background(), src, time.Hour)
	m.Start()
	defer m.Stop()

	src.events <- types.InputEvent("q")

	ev, ok := nextWithin(t, m, time.Second)
	if !ok {
		t.Fatal("Next() returned no event")
	}
	if ev.Kind != types.EventInput || ev.Key != "q" {
		t.Errorf("Next() = %+v, want input q", ev)
	}
}

func TestMultiplexerTicks(t *testing.T) {
	m := NewMultiplexer(context.Background(), newChanSource(), 5*time.Millisecond)
	m.Start()
	defer m.Stop()

	for i := 0; i < 3; i++ {
		ev, ok := nextWithin(t, m, time.Second)
		if !ok {
			t.Fatalf("tick %d: Next() returned no event", i)
		}
		if ev.Kind != types.EventTick {
			t.Errorf("tick %d: Kind = %v, want %v", i, ev.Kind, types.EventTick)
		}
	}
}

func TestMultiplexerCoalescesTicks(t *testing.T) {
	m := NewMultiplexer(context.Background(), newChanSource(), time.Millisecond)
	m.Start()
	defer m.Stop()

	// Let many ticks fire without consuming.
	time.Sleep(30 * time.Millisecond)

	m.mu.Lock()
	ticks := 0
	for _, ev := range m.queue {
		if ev.Kind == types.EventTick {
			ticks++
		}
	}
	m.mu.Unlock()
	if ticks > 1 {
		t.Errorf("queued ticks = %d, want at most 1", ticks)
	}
}

func TestMultiplexerSendOrder(t *testing.T) {
	m := NewMultiplexer(context.Background(), newChanSource(), time.Hour)
	m.Start()
	defer m.Stop()

	want := []types.AppCommand{
		types.OpenDetail("abc"),
		types.RefreshDetail("abc"),
		types.RefreshList(types.KindImages),
	}
	for _, cmd := range want {
		m.Send(cmd)
	}

	for i, w := range want {
		ev, ok := nextWithin(t, m, time.Second)
		if !ok {
			t.Fatalf("command %d: Next() returned no event", i)
		}
		if ev.Kind != types.EventCommand || ev.Command != w {
			t.Errorf("command %d = %+v, want %v", i, ev, w)
		}
	}
}

func TestMultiplexerInputFailureEndsStream(t *testing.T) {
	src := newChanSource()
	m := NewMultiplexer(context.Background(), src, time.Hour)
	m.Start()
	defer m.Stop()

	src.events <- types.InputEvent("j")
	close(src.events)

	ev, ok := nextWithin(t, m, time.Second)
	if !ok || ev.Key != "j" {
		t.Fatalf("Next() = %+v, %v; want queued input j", ev, ok)
	}

	if _, ok := nextWithin(t, m, time.Second); ok {
		t.Error("Next() after input failure returned an event, want end of stream")
	}
	if !errors.Is(m.Err(), src.err) {
		t.Errorf("Err() = %v, want %v", m.Err(), src.err)
	}
}

func TestMultiplexerStop(t *testing.T) {
	m := NewMultiplexer(context.Background(), newChanSource(), time.Millisecond)
	m.Start()

	done := make(chan struct{})
	go func() {
		m.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop() did not return")
	}

	// Drain whatever was queued before the stop; the stream must then end.
	for i := 0; i < 4; i++ {
		if _, ok := nextWithin(t, m, 100*time.Millisecond); !ok {
			if m.Err() != nil {
				t.Errorf("Err() = %v, want nil after Stop", m.Err())
			}
			return
		}
	}
	t.Error("Next() kept producing after Stop")
}

func TestMultiplexerNextHonorsContext(t *testing.T) {
	m := NewMultiplexer(context.Background(), newChanSource(), time.Hour)
	m.Start()
	defer m.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, ok := m.Next(ctx); ok {
		t.Error("Next() with cancelled context returned an event")
	}
}
