// Package registry holds the process-wide, read-only table of unit descriptors.
//
// A Registry is built once at startup and never mutated afterwards, so it can be
// shared freely. Lookups expect tokens that were already passed through
// domain.Normalize.
package registry

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/doeshing/unitconv/internal/domain"
	"github.com/doeshing/unitconv/internal/ports"
)

// Registry is an immutable set of unit descriptors grouped by category.
type Registry struct {
	categories []domain.Category
	units      map[domain.Category][]domain.Unit
}

// New validates units against categories and builds a Registry.
// Every unit must belong to a listed category, canonical keys must be unique
// within a category, factors must be positive and finite, and affine units
// must live alone in the Temperature category.
func New(categories []domain.Category, units []domain.Unit) (*Registry, error) {
	r := &Registry{
		categories: slices.Clone(categories),
		units:      make(map[domain.Category][]domain.Unit, len(categories)),
	}
	keys := make(map[domain.Category]map[string]string, len(categories))
	for _, cat := range categories {
		if _, dup := keys[cat]; dup {
			return nil, fmt.Errorf("%w: category %q listed twice", domain.ErrRegistry, cat)
		}
		keys[cat] = make(map[string]string)
	}

	for _, u := range units {
		seen, ok := keys[u.Category]
		if !ok {
			return nil, fmt.Errorf("%w: unit %q has unknown category %q", domain.ErrRegistry, u.Symbol, u.Category)
		}
		if err := validateScale(u); err != nil {
			return nil, err
		}
		for _, key := range append([]string{u.Key()}, u.Aliases...) {
			if domain.Normalize(key) != key {
				return nil, fmt.Errorf("%w: alias %q of %q is not normalized", domain.ErrRegistry, key, u.Symbol)
			}
			if owner, dup := seen[key]; dup {
				return nil, fmt.Errorf("%w: duplicate key %q in %s (%s, %s)", domain.ErrRegistry, key, u.Category, owner, u.Symbol)
			}
			seen[key] = u.Symbol
		}
		u.Aliases = slices.Clone(u.Aliases)
		r.units[u.Category] = append(r.units[u.Category], u)
	}
	return r, nil
}

// Default builds the registry of built-in units.
func Default() (*Registry, error) {
	return New(builtinCategories(), builtinUnits())
}

func validateScale(u domain.Unit) error {
	switch s := u.Scale.(type) {
	case domain.FactorScale:
		if u.Category == domain.CategoryTemperature {
			return fmt.Errorf("%w: temperature unit %q must be affine", domain.ErrRegistry, u.Symbol)
		}
		if !(s.Factor > 0) || math.IsInf(s.Factor, 0) {
			return fmt.Errorf("%w: unit %q has invalid factor %v", domain.ErrRegistry, u.Symbol, s.Factor)
		}
	case domain.AffineScale:
		if u.Category != domain.CategoryTemperature {
			return fmt.Errorf("%w: affine unit %q outside %s", domain.ErrRegistry, u.Symbol, domain.CategoryTemperature)
		}
		if s.ToCelsius == nil || s.FromCelsius == nil {
			return fmt.Errorf("%w: affine unit %q is incomplete", domain.ErrRegistry, u.Symbol)
		}
	default:
		return fmt.Errorf("%w: unit %q has no scale", domain.ErrRegistry, u.Symbol)
	}
	return nil
}

// Categories returns the category tags in display order.
func (r *Registry) Categories() []domain.Category {
	return slices.Clone(r.categories)
}

// Units yields the descriptors of a category in registration order.
// CategoryAll yields every unit, category by category.
func (r *Registry) Units(category domain.Category) iter.Seq[domain.Unit] {
	return func(yield func(domain.Unit) bool) {
		for _, cat := range r.scope(category) {
			for _, u := range r.units[cat] {
				if !yield(u) {
					return
				}
			}
		}
	}
}

// Lookup resolves a normalized token within category. Symbols are compared
// before aliases, and the first match in display order wins.
func (r *Registry) Lookup(token string, category domain.Category) (domain.Unit, bool) {
	if token == "" {
		return domain.Unit{}, false
	}
	scope := r.scope(category)
	for _, cat := range scope {
		for _, u := range r.units[cat] {
			if u.Key() == token {
				return u, true
			}
		}
	}
	for _, cat := range scope {
		for _, u := range r.units[cat] {
			if slices.Contains(u.Aliases, token) {
				return u, true
			}
		}
	}
	return domain.Unit{}, false
}

// Exists reports whether Lookup would succeed.
func (r *Registry) Exists(token string, category domain.Category) bool {
	_, ok := r.Lookup(token, category)
	return ok
}

// HasCategory reports whether category is registered.
func (r *Registry) HasCategory(category domain.Category) bool {
	return slices.Contains(r.categories, category)
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	n := 0
	for _, units := range r.units {
		n += len(units)
	}
	return n
}

func (r *Registry) scope(category domain.Category) []domain.Category {
	if category == "" || category == domain.CategoryAll {
		return r.categories
	}
	if _, ok := r.units[category]; ok {
		return []domain.Category{category}
	}
	return nil
}

var _ ports.UnitCatalog = (*Registry)(nil)
