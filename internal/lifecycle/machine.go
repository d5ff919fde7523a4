package lifecycle

// Machine tracks the current status and applies only valid transitions.
// Invalid requests are ignored; callers are trusted and never see an error.
type Machine struct {
	status Status
	// onReset runs every time the machine enters Preparing.
	onReset func()
	// onChange observes applied transitions.
	onChange func(from, to Status)
}

// NewMachine creates a machine in Preparing.
func NewMachine() *Machine {
	return &Machine{status: StatusPreparing}
}

// OnReset registers the hook run when the machine enters Preparing.
func (m *Machine) OnReset(fn func()) {
	m.onReset = fn
}

// OnChange registers an observer for applied transitions.
func (m *Machine) OnChange(fn func(from, to Status)) {
	m.onChange = fn
}

// Status returns the current status.
func (m *Machine) Status() Status {
	return m.status
}

// Set requests a transition. It returns whether the transition was applied.
func (m *Machine) Set(to Status) bool {
	from := m.status
	if !CanTransition(from, to) {
		return false
	}

	m.status = to
	if to == StatusPreparing && m.onReset != nil {
		m.onReset()
	}
	if m.onChange != nil {
		m.onChange(from, to)
	}
	return true
}

// End moves a running game to Over. Called when the engine reports a
// terminal outcome; a no-op outside Playing.
func (m *Machine) End() bool {
	return m.Set(StatusOver)
}
