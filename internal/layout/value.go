package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content or the parent
	UnitFixed               // Absolute terminal cells
	UnitPercent             // Percentage of the parent's available space
)

// Value represents a dimension that can be fixed, percentage, or auto.
// The zero Value is Auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that is computed from content or stretched by the parent.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of terminal cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the integer size given available space.
// Auto values resolve to fallback.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		return int(float64(available) * v.Amount / 100.0)
	default:
		return fallback
	}
}

// IsAuto reports whether this value is computed from content or stretching.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// fixedOr returns the fixed amount of v, or fallback for auto and percent
// values. Used where no definite reference size exists.
func fixedOr(v Value, fallback int) int {
	if v.Unit == UnitFixed {
		return int(v.Amount)
	}
	return fallback
}
