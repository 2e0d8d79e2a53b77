package waveedit

type (
	// Action is a user command on the model: a toolbar button, a key binding
	// or a menu item. The UI asks Enabled to gray out the control and calls
	// Do when the user triggers it.
	Action struct {
		doer Doer
	}

	// Doer performs an action.
	Doer interface {
		Do()
	}

	// Enabler is implemented by the Doers, Bools and Ints that are only
	// available in some states of the model, e.g. not in the middle of a
	// gesture. A Doer without Enabled is always available.
	Enabler interface {
		Enabled() bool
	}
)

func MakeAction(doer Doer) Action {
	return Action{doer: doer}
}

// Do performs the action if it is enabled and reports whether it did.
func (a Action) Do() (ok bool) {
	if !a.Enabled() {
		return false
	}
	a.doer.Do()
	return true
}

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false
	}
	if e, ok := a.doer.(Enabler); ok {
		return e.Enabled()
	}
	return true
}
