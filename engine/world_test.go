package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/gatewarp/component"
	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/event"
	"github.com/lixenwraith/gatewarp/vmath"
)

func TestEntityGenerationCheck(t *testing.T) {
	w := NewWorld(nil, 1)

	e := w.CreateEntity()
	if e.IsNull() || !w.Alive(e) {
		t.Fatalf("fresh entity %v not alive", e)
	}
	w.Components.SimPosition.SetComponent(e, component.SimPositionComponent{Pos: vmath.Vec3F{X: 1}})

	w.DestroyEntity(e)
	if w.Alive(e) {
		t.Fatal("destroyed entity still alive")
	}
	if w.Components.SimPosition.HasEntity(e) {
		t.Fatal("destroy left a component behind")
	}

	reused := w.CreateEntity()
	if reused.Index() != e.Index() {
		t.Fatalf("slot not reused: %v then %v", e, reused)
	}
	if reused.Generation() == e.Generation() || reused == e {
		t.Fatalf("reused slot kept generation: %v", reused)
	}
	if w.Alive(e) {
		t.Error("old handle resolves to the new occupant")
	}

	// Destroying a stale handle must not touch the new occupant
	w.Components.SimPosition.SetComponent(reused, component.SimPositionComponent{})
	w.DestroyEntity(e)
	if !w.Alive(reused) || !w.Components.SimPosition.HasEntity(reused) {
		t.Error("stale destroy affected reused slot")
	}

	if w.Alive(core.NullEntity) {
		t.Error("null handle alive")
	}
	if w.EntityCount() != 1 {
		t.Errorf("EntityCount = %d, want 1", w.EntityCount())
	}
}

func TestStoreOperations(t *testing.T) {
	s := NewStore[int]()
	a, b, c := core.NewEntity(1, 1), core.NewEntity(2, 1), core.NewEntity(3, 1)

	s.SetComponent(a, 1)
	s.SetComponent(b, 2)
	s.SetComponent(c, 3)
	s.SetComponent(a, 10)

	if s.CountEntities() != 3 {
		t.Fatalf("count = %d", s.CountEntities())
	}
	if v, _ := s.GetComponent(a); v != 10 {
		t.Errorf("a = %d, want 10", v)
	}

	if !s.UpdateComponent(b, func(v *int) { *v *= 7 }) {
		t.Error("UpdateComponent on present entity returned false")
	}
	if v, _ := s.GetComponent(b); v != 14 {
		t.Errorf("b = %d, want 14", v)
	}
	if s.UpdateComponent(core.NewEntity(9, 1), func(*int) {}) {
		t.Error("UpdateComponent on absent entity returned true")
	}

	s.RemoveEntity(a)
	all := s.GetAllEntities()
	if len(all) != 2 || s.HasEntity(a) {
		t.Errorf("after remove: %v", all)
	}

	all[0] = core.NullEntity
	if s.GetAllEntities()[0].IsNull() {
		t.Error("GetAllEntities exposed internal slice")
	}

	s.ClearAllComponents()
	if s.CountEntities() != 0 || s.HasEntity(b) {
		t.Error("clear left entities")
	}
}

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	types    []event.EventType
	events   []event.GameEvent
	onUpdate func()
}

func (s *recordingSystem) Init()         {}
func (s *recordingSystem) Name() string  { return s.name }
func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Update() {
	*s.log = append(*s.log, s.name)
	if s.onUpdate != nil {
		s.onUpdate()
	}
}
func (s *recordingSystem) EventTypes() []event.EventType { return s.types }
func (s *recordingSystem) HandleEvent(ev event.GameEvent) {
	*s.log = append(*s.log, "event:"+s.name)
	s.events = append(s.events, ev)
}

func TestStepOrderAndEventDispatch(t *testing.T) {
	w := NewWorld(nil, 1)
	var log []string

	late := &recordingSystem{name: "late", priority: 200, log: &log}
	early := &recordingSystem{name: "early", priority: 10, log: &log, types: []event.EventType{event.EventTravelRequest}}
	w.AddSystem(late)
	w.AddSystem(early)

	ship := w.CreateEntity()
	w.PushEvent(event.EventTravelRequest, &event.TravelRequestPayload{Entity: ship})
	w.Step(50 * time.Millisecond)

	want := []string{"event:early", "early", "late"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}

	if len(early.events) != 1 || early.events[0].Frame != 0 {
		t.Errorf("events = %+v", early.events)
	}
	if w.Resources.Time.FrameNumber != 1 || w.Resources.Time.DeltaTime != 50*time.Millisecond {
		t.Errorf("time = %+v", *w.Resources.Time)
	}
}

func TestCommandsFlushAfterEachSystem(t *testing.T) {
	w := NewWorld(nil, 1)
	var log []string
	e := w.CreateEntity()

	writer := &recordingSystem{name: "writer", priority: 1, log: &log}
	writer.onUpdate = func() {
		Insert(w.Commands(), w.Components.Kinetic, e, component.KineticComponent{Vel: vmath.Vec3F{X: 3}})
		if w.Components.Kinetic.HasEntity(e) {
			t.Error("insert applied before flush")
		}
	}
	reader := &recordingSystem{name: "reader", priority: 2, log: &log}
	reader.onUpdate = func() {
		if !w.Components.Kinetic.HasEntity(e) {
			t.Error("insert not visible to the next system")
		}
	}
	w.AddSystem(writer)
	w.AddSystem(reader)

	w.Step(time.Millisecond)
}

func TestResourceStore(t *testing.T) {
	w := NewWorld(nil, 9)

	if got := MustGetResource[*TimeResource](w.ResourceStore); got != w.Resources.Time {
		t.Error("time resource not registered")
	}
	if _, ok := GetResource[*struct{ X int }](w.ResourceStore); ok {
		t.Error("unexpected resource")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGetResource did not panic on missing resource")
		}
	}()
	MustGetResource[*struct{ Y int }](w.ResourceStore)
}
