// Package domain defines the core entities and value objects of the unit converter.
//
// The domain layer is independent of infrastructure concerns: it holds unit
// descriptors, history entries, configuration shapes, sentinel errors and the
// pure name-normalization rule shared by every lookup path.
package domain

// Category tags a group of units that can be converted into one another.
type Category string

// Built-in categories in display order.
const (
	CategoryLength      Category = "Length"
	CategoryTemperature Category = "Temperature"
	CategoryStorage     Category = "Digital Storage"
	CategoryMass        Category = "Mass"
	CategoryTime        Category = "Time"
	CategoryVolume      Category = "Volume"
	CategoryArea        Category = "Area"
	CategorySpeed       Category = "Speed"
	CategoryEnergy      Category = "Energy"
	CategoryPower       Category = "Power"
	CategoryPressure    Category = "Pressure"

	// CategoryAll is the pseudo-category that scopes a lookup to every category.
	CategoryAll Category = "All"
)

// Scale describes how a unit maps onto its category's reference point.
// It is either a FactorScale or an AffineScale.
type Scale interface {
	isScale()
}

// FactorScale converts by multiplication: base = value * Factor.
type FactorScale struct {
	Factor float64
}

func (FactorScale) isScale() {}

// AffineScale converts through Celsius with an offset, used by temperature units.
type AffineScale struct {
	ToCelsius   func(float64) float64
	FromCelsius func(float64) float64
}

func (AffineScale) isScale() {}

// Unit is an immutable unit descriptor.
type Unit struct {
	Name        string
	Symbol      string
	Category    Category
	Scale       Scale
	Aliases     []string
	Description string
}

// Key is the canonical lookup key of the unit's symbol.
func (u Unit) Key() string {
	return Normalize(u.Symbol)
}

// IsTemperature reports whether the unit converts on the affine path.
func (u Unit) IsTemperature() bool {
	_, ok := u.Scale.(AffineScale)
	return ok
}

// Factor returns the multiplier to the category base unit, or 0 for affine units.
func (u Unit) Factor() float64 {
	if f, ok := u.Scale.(FactorScale); ok {
		return f.Factor
	}
	return 0
}

// Matches reports whether an already normalized token names this unit,
// checking the symbol first and then the aliases.
func (u Unit) Matches(token string) bool {
	if token == u.Key() {
		return true
	}
	for _, alias := range u.Aliases {
		if token == alias {
			return true
		}
	}
	return false
}
