package waveedit

type (
	Int struct {
		IntData
	}

	IntData interface {
		Value() int
		Range() IntRange

		setValue(int)
	}

	IntRange struct {
		Min, Max int
	}
)

func (v Int) Add(delta int) (ok bool) {
	return v.Set(v.Value() + delta)
}

func (v Int) Set(value int) (ok bool) {
	value = v.Range().Clamp(value)
	if value == v.Value() {
		return false
	}
	v.setValue(value)
	return true
}

func (r IntRange) Clamp(value int) int {
	return max(min(value, r.Max), r.Min)
}
