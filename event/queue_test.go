package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/gatewarp/parameter"
)

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	if q.Consume() != nil {
		t.Fatal("empty queue returned events")
	}

	for i := 0; i < 10; i++ {
		q.Push(GameEvent{Type: EventTravelRequest, Frame: int64(i)})
	}
	if q.Len() != 10 {
		t.Errorf("Len = %d, want 10", q.Len())
	}

	events := q.Consume()
	if len(events) != 10 {
		t.Fatalf("consumed %d, want 10", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Fatalf("event %d has frame %d", i, ev.Frame)
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len after consume = %d", q.Len())
	}
}

func TestEventQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 100
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventWarpEngaged, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("consumed %d, want %d", len(events), parameter.EventQueueSize)
	}
	if events[0].Frame != 100 || events[len(events)-1].Frame != int64(total-1) {
		t.Errorf("window [%d, %d]", events[0].Frame, events[len(events)-1].Frame)
	}
	if q.Dropped() == 0 {
		t.Error("overflow not counted")
	}
}

func TestEventQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	const producers, perProducer = 8, 200

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventTravelComplete, Payload: p, Frame: int64(i)})
			}
		}(p)
	}
	wg.Wait()

	events := q.ConsumeInto(make([]GameEvent, 0, producers*perProducer))
	if len(events) != producers*perProducer {
		t.Fatalf("consumed %d, want %d", len(events), producers*perProducer)
	}

	// Per-producer order survives interleaving
	last := make(map[int]int64)
	for _, ev := range events {
		p := ev.Payload.(int)
		if prev, ok := last[p]; ok && ev.Frame <= prev {
			t.Fatalf("producer %d out of order: %d after %d", p, ev.Frame, prev)
		}
		last[p] = ev.Frame
	}
}

func TestEventNames(t *testing.T) {
	for et := EventTick; et < eventTypeCount; et++ {
		name := GetEventName(et)
		back, ok := GetEventType(name)
		if !ok || back != et {
			t.Errorf("%d: name %q resolves to %d (%v)", et, name, back, ok)
		}
	}
	if et, ok := GetEventType("eventwarpengaged"); !ok || et != EventWarpEngaged {
		t.Error("lookup is not case-insensitive")
	}
	if GetEventName(eventTypeCount) == "" {
		t.Error("unknown type has empty name")
	}
}
