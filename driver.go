package forest

import "time"

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// Scheduler runs frame callbacks, typically once per display refresh.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Clock supplies the current time to the driver.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// DriverState is the animation driver's lifecycle state.
type DriverState uint8

const (
	DriverIdle    DriverState = iota // created, not started
	DriverRunning                    // scheduling frames
	DriverStopped                    // terminal
)

// String returns a lowercase name for the state.
func (s DriverState) String() string {
	switch s {
	case DriverIdle:
		return "idle"
	case DriverRunning:
		return "running"
	case DriverStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Driver feeds monotonically increasing elapsed milliseconds to a render
// function, one call per scheduled frame. Stopped is terminal: once Stop
// returns, render is never called again, even if the scheduler fires a
// callback it was asked to cancel.
type Driver struct {
	sched  Scheduler
	clock  Clock
	render func(ms float64)

	state   DriverState
	start   time.Time
	lastMS  float64
	pending FrameID
	frames  uint64
}

// NewDriver creates an idle driver. Panics if sched or render is nil. A nil
// clock uses the system clock.
func NewDriver(sched Scheduler, clock Clock, render func(ms float64)) *Driver {
	if sched == nil {
		panic("forest: driver needs a scheduler")
	}
	if render == nil {
		panic("forest: driver needs a render function")
	}
	if clock == nil {
		clock = systemClock{}
	}
	return &Driver{sched: sched, clock: clock, render: render}
}

// State returns the driver's lifecycle state.
func (d *Driver) State() DriverState {
	return d.state
}

// Frames returns how many times render has been called.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Start renders frame 0 at t=0 immediately and schedules the next frame.
// Calling Start on a running or stopped driver does nothing.
func (d *Driver) Start() {
	if d.state != DriverIdle {
		return
	}
	d.state = DriverRunning
	d.start = d.clock.Now()
	d.lastMS = 0
	d.frames++
	d.render(0)
	if d.state == DriverRunning {
		d.schedule()
	}
}

// Stop cancels the pending frame and moves to the terminal state.
func (d *Driver) Stop() {
	if d.state == DriverStopped {
		return
	}
	if d.state == DriverRunning && d.pending != 0 {
		d.sched.CancelFrame(d.pending)
	}
	d.pending = 0
	d.state = DriverStopped
}

func (d *Driver) schedule() {
	var id FrameID
	id = d.sched.RequestFrame(func() { d.tick(id) })
	d.pending = id
}

// tick runs one frame. Callbacks for anything but the current pending frame
// are stale and ignored.
func (d *Driver) tick(id FrameID) {
	if d.state != DriverRunning || id != d.pending {
		return
	}
	d.pending = 0

	ms := float64(d.clock.Now().Sub(d.start)) / float64(time.Millisecond)
	if ms < d.lastMS {
		ms = d.lastMS
	}
	d.lastMS = ms

	d.frames++
	d.render(ms)
	if d.state == DriverRunning {
		d.schedule()
	}
}

// ManualScheduler queues frame callbacks until the host pumps them with
// RunPending. The ebiten host pumps it once per Draw; tests pump it by hand.
type ManualScheduler struct {
	nextID FrameID
	queue  []scheduledFrame
	buf    []scheduledFrame
}

type scheduledFrame struct {
	id FrameID
	fn func()
}

// RequestFrame implements Scheduler.
func (s *ManualScheduler) RequestFrame(fn func()) FrameID {
	s.nextID++
	s.queue = append(s.queue, scheduledFrame{id: s.nextID, fn: fn})
	return s.nextID
}

// CancelFrame implements Scheduler. Unknown IDs are ignored.
func (s *ManualScheduler) CancelFrame(id FrameID) {
	for i := range s.queue {
		if s.queue[i].id == id {
			copy(s.queue[i:], s.queue[i+1:])
			s.queue[len(s.queue)-1] = scheduledFrame{}
			s.queue = s.queue[:len(s.queue)-1]
			return
		}
	}
}

// Pending returns the number of queued callbacks.
func (s *ManualScheduler) Pending() int {
	return len(s.queue)
}

// RunPending runs every callback queued before the call. Callbacks queued
// while running wait for the next RunPending. It returns how many ran.
func (s *ManualScheduler) RunPending() int {
	if len(s.queue) == 0 {
		return 0
	}
	s.buf = append(s.buf[:0], s.queue...)
	s.queue = s.queue[:0]
	for i := range s.buf {
		s.buf[i].fn()
		s.buf[i] = scheduledFrame{}
	}
	return len(s.buf)
}
