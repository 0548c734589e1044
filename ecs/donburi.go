package ecs

import (
	"github.com/greenroots/forest"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SelectionEventType is the Donburi event type for forest selection events.
// One event is published per click on an interactive forest.
var SelectionEventType = events.NewEventType[forest.SelectionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Selection events are published to SelectionEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) forest.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitSelection(event forest.SelectionEvent) {
	SelectionEventType.Publish(s.world, event)
}

// SelectedTree mirrors the forest selection inside the world.
type SelectedTree struct {
	ID       string
	Selected bool
}

// SelectedTreeComponent is the component holding SelectedTree.
var SelectedTreeComponent = donburi.NewComponentType[SelectedTree]()

// NewSelectionTracker creates an entity carrying SelectedTreeComponent and
// subscribes it to SelectionEventType. The component is updated whenever the
// world's selection events are processed.
func NewSelectionTracker(world donburi.World) donburi.Entity {
	entity := world.Create(SelectedTreeComponent)
	SelectionEventType.Subscribe(world, func(w donburi.World, e forest.SelectionEvent) {
		if !w.Valid(entity) {
			return
		}
		sel := SelectedTreeComponent.Get(w.Entry(entity))
		sel.ID = e.TreeID
		sel.Selected = e.Selected
	})
	return entity
}
