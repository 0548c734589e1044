package forest

// syntheticClick is a single injected click in surface coordinates.
type syntheticClick struct {
	x, y float64
}

// InjectClick queues a click at the given surface coordinates. One queued
// click is consumed per Update, in place of real pointer input.
func (f *Forest) InjectClick(x, y float64) {
	f.injectQueue = append(f.injectQueue, syntheticClick{x: x, y: y})
}

// processInjectedInput pops one click from the inject queue and dispatches
// it. Returns true if a click was consumed.
func (f *Forest) processInjectedInput() bool {
	if len(f.injectQueue) == 0 {
		return false
	}
	evt := f.injectQueue[0]
	copy(f.injectQueue, f.injectQueue[1:])
	f.injectQueue = f.injectQueue[:len(f.injectQueue)-1]

	f.Click(evt.x, evt.y)
	return true
}
