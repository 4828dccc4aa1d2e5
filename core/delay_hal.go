package core

// DelayDriver is the abstract busy-wait interface that core code
// uses. Implementations must block for at least the requested
// duration without yielding to other work.
type DelayDriver interface {
	// Micros blocks for at least us microseconds.
	Micros(us uint32)
}

// Global singleton used by core code.
var delayDriver DelayDriver

// SetDelayDriver is called by target-specific code to register its driver.
func SetDelayDriver(d DelayDriver) {
	delayDriver = d
}

// MustDelay returns the configured driver or panics if missing.
func MustDelay() DelayDriver {
	if delayDriver == nil {
		panic("delay driver not configured")
	}
	return delayDriver
}
