package convert

import (
	"fmt"

	"github.com/doeshing/unitconv/internal/domain"
	"github.com/doeshing/unitconv/internal/ports"
)

// Convert resolves two normalized tokens across all categories and converts value.
// On failure the input value is returned alongside the error.
func Convert(catalog ports.UnitCatalog, value float64, from, to string) (float64, error) {
	fromUnit, ok := catalog.Lookup(from, domain.CategoryAll)
	if !ok {
		return value, fmt.Errorf("%w: %q", domain.ErrUnknownFromUnit, from)
	}
	toUnit, ok := catalog.Lookup(to, domain.CategoryAll)
	if !ok {
		return value, fmt.Errorf("%w: %q", domain.ErrUnknownToUnit, to)
	}
	return ConvertUnits(value, fromUnit, toUnit)
}

// ConvertUnits converts value between two resolved descriptors of the same category.
func ConvertUnits(value float64, from, to domain.Unit) (float64, error) {
	if from.Category != to.Category {
		return value, fmt.Errorf("%w: %s is %s, %s is %s",
			domain.ErrCrossCategory, from.Symbol, from.Category, to.Symbol, to.Category)
	}

	switch src := from.Scale.(type) {
	case domain.AffineScale:
		dst, ok := to.Scale.(domain.AffineScale)
		if !ok {
			return value, fmt.Errorf("%w: %s is not a temperature", domain.ErrCrossCategory, to.Symbol)
		}
		return dst.FromCelsius(src.ToCelsius(value)), nil
	case domain.FactorScale:
		dst, ok := to.Scale.(domain.FactorScale)
		if !ok {
			return value, fmt.Errorf("%w: %s is a temperature", domain.ErrCrossCategory, to.Symbol)
		}
		// The ratio is taken first so that converting a unit to itself is exact.
		return value * (src.Factor / dst.Factor), nil
	default:
		return value, fmt.Errorf("%w: %s has no scale", domain.ErrRegistry, from.Symbol)
	}
}
