package waveedit

type (
	Bool struct {
		BoolData
	}

	BoolData interface {
		Value() bool
		Enabled() bool
		setValue(bool)
	}

	// StretchMode is true when dragging a selection edge stretches the
	// selected samples and false when it only extends the selection.
	StretchMode Model
)

func (v Bool) Toggle() {
	v.Set(!v.Value())
}

func (v Bool) Set(value bool) {
	if v.Enabled() && v.Value() != value {
		v.setValue(value)
	}
}

// StretchMode returns the selection drag mode toggle.
func (m *Model) StretchMode() *StretchMode { return (*StretchMode)(m) }

func (m *StretchMode) Bool() Bool        { return Bool{m} }
func (m *StretchMode) Value() bool       { return m.stretching }
func (m *StretchMode) setValue(val bool) { m.stretching = val }
func (m *StretchMode) Enabled() bool     { return !m.pressed }
