package ecs

import (
	"testing"

	"github.com/greenroots/forest"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitSelection(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []forest.SelectionEvent
	SelectionEventType.Subscribe(world, func(w donburi.World, e forest.SelectionEvent) {
		received = append(received, e)
	})

	store.EmitSelection(forest.SelectionEvent{TreeID: "1", Selected: true, X: 100, Y: 200})
	store.EmitSelection(forest.SelectionEvent{})

	// Events are queued; process them.
	SelectionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.TreeID != "1" || !e0.Selected || e0.X != 100 || e0.Y != 200 {
		t.Errorf("event 0: %+v", e0)
	}
	if received[1].Selected {
		t.Errorf("event 1 should be a cleared selection: %+v", received[1])
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	SelectionEventType.Subscribe(world, func(w donburi.World, e forest.SelectionEvent) {
		count1++
	})
	SelectionEventType.Subscribe(world, func(w donburi.World, e forest.SelectionEvent) {
		count2++
	})

	store.EmitSelection(forest.SelectionEvent{TreeID: "2", Selected: true})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestSelectionTracker(t *testing.T) {
	world := donburi.NewWorld()
	entity := NewSelectionTracker(world)
	store := NewDonburiStore(world)

	store.EmitSelection(forest.SelectionEvent{TreeID: "3", Selected: true})
	events.ProcessAllEvents(world)

	sel := SelectedTreeComponent.Get(world.Entry(entity))
	if sel.ID != "3" || !sel.Selected {
		t.Fatalf("after select: %+v", *sel)
	}

	store.EmitSelection(forest.SelectionEvent{})
	events.ProcessAllEvents(world)
	if sel := SelectedTreeComponent.Get(world.Entry(entity)); sel.Selected || sel.ID != "" {
		t.Errorf("after miss: %+v", *sel)
	}
}

func TestForestPublishesToWorld(t *testing.T) {
	world := donburi.NewWorld()
	entity := NewSelectionTracker(world)

	cfg := forest.DefaultConfig(forest.ModeInteractive)
	cfg.Seed = 7
	cfg.HighlightDuration = 0
	f := forest.New(cfg)
	f.SetEventStore(NewDonburiStore(world))
	f.SetRecords([]forest.TreeRecord{{ID: "a", Name: "Groot", Species: "Oak"}})
	f.Attach(forest.NewGGPainter(400, 300), &forest.FixedContainer{W: 400, H: 300})
	defer f.Detach()

	a := f.Instances()[0].CanopyAnchor()
	f.Click(a.X, a.Y)
	events.ProcessAllEvents(world)

	sel := SelectedTreeComponent.Get(world.Entry(entity))
	if sel.ID != "a" || !sel.Selected {
		t.Errorf("tracker = %+v, want a selected", *sel)
	}
}
