// Package ecs provides ECS adapters for forest's selection events.
//
// [NewDonburiStore] bridges forest selection events into a [Donburi] world
// as typed events. Subscribe to [SelectionEventType] in your ECS systems to
// receive them, or use [NewSelectionTracker] to mirror the current selection
// into a component.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	f.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
