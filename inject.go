package frost

// InjectPress queues a synthetic pointer press at (x, y). Injected events are
// consumed one per tick, after any real input queued for that tick.
func (d *Driver) InjectPress(x, y float64) {
	d.injectQueue = append(d.injectQueue, PointerEvent{Type: EventPointerDown, X: x, Y: y})
}

// InjectMove queues a synthetic pointer move to (x, y).
func (d *Driver) InjectMove(x, y float64) {
	d.injectQueue = append(d.injectQueue, PointerEvent{Type: EventPointerMove, X: x, Y: y})
}

// InjectRelease queues a synthetic pointer release at (x, y).
func (d *Driver) InjectRelease(x, y float64) {
	d.injectQueue = append(d.injectQueue, PointerEvent{Type: EventPointerUp, X: x, Y: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two ticks.
func (d *Driver) InjectClick(x, y float64) {
	d.InjectPress(x, y)
	d.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over ticks-2 intermediate ticks, and
// release at (toX, toY). The total sequence consumes `ticks` ticks.
// Minimum ticks is 2 (press + release).
//
// A held pointer keeps the target pinned at the press point, so the moves
// only update the recorded pointer; the button follows once released and
// moved again.
func (d *Driver) InjectDrag(fromX, fromY, toX, toY float64, ticks int) {
	if ticks < 2 {
		ticks = 2
	}
	d.InjectPress(fromX, fromY)
	steps := ticks - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		d.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	d.InjectRelease(toX, toY)
}

// PendingInjected returns the number of injected events not yet consumed.
func (d *Driver) PendingInjected() int {
	return len(d.injectQueue)
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed.
func (d *Driver) processInjectedInput() bool {
	if len(d.injectQueue) == 0 {
		return false
	}
	ev := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]
	d.motion.Apply(ev)
	return true
}
