package valuesync

const (
	MinValue     = 0
	MaxValue     = 100
	DefaultValue = 50
)

// Range is a closed integer interval shared by the controller and its inputs.
type Range struct {
	Min, Max int
}

func DefaultRange() Range {
	return Range{Min: MinValue, Max: MaxValue}
}

func (r Range) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}
