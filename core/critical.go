package core

// Critical runs fn with interrupts disabled, restoring the previous
// interrupt state on every exit path. Transmission is only correct
// when nothing preempts the bit loop, so callers that otherwise run
// with interrupts enabled wrap Init and Upload in Critical.
func Critical(fn func()) {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	fn()
}
