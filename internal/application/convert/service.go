// Package convert implements the conversion engine: unit resolution, the
// factor and affine conversion paths, and recording into the history log.
package convert

import (
	"errors"
	"fmt"
	"math"

	"github.com/doeshing/unitconv/internal/domain"
	"github.com/doeshing/unitconv/internal/ports"
)

const precisionWarning = "Warning: values this large may lose precision"

// Service is the engine owned by the presentation layer. It resolves tokens
// against the unit catalog, converts, and appends every success to History.
type Service struct {
	Units   ports.UnitCatalog
	History ports.HistoryRepository
	Logger  ports.Logger
}

func (s *Service) ready() error {
	if s.Units == nil || s.History == nil || s.Logger == nil {
		return errors.New("convert.Service dependencies not satisfied")
	}
	return nil
}

// Resolve normalizes a raw token and looks it up within scope.
// The returned token is the normalized form that succeeded lookup.
func (s *Service) Resolve(raw string, scope domain.Category) (domain.Unit, string, error) {
	token := domain.Normalize(raw)
	unit, ok := s.Units.Lookup(token, scope)
	if !ok {
		s.Logger.Debug("unit lookup miss", map[string]interface{}{
			"token": token,
			"scope": string(scope),
		})
		return domain.Unit{}, token, fmt.Errorf("%w: %q", domain.ErrUnknownUnit, raw)
	}
	return unit, token, nil
}

// Convert runs a single conversion and records it. Persistence failures are
// reported through ConversionResult.Warnings and never fail the conversion.
func (s *Service) Convert(req domain.ConversionRequest) (domain.ConversionResult, error) {
	if err := s.ready(); err != nil {
		return domain.ConversionResult{}, err
	}
	if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		return domain.ConversionResult{}, fmt.Errorf("%w: %v", domain.ErrParseNumber, req.Value)
	}

	fromUnit, fromToken, err := s.Resolve(req.From, req.Scope)
	if err != nil {
		return domain.ConversionResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownFromUnit, req.From)
	}
	toUnit, toToken, err := s.Resolve(req.To, req.Scope)
	if err != nil {
		return domain.ConversionResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownToUnit, req.To)
	}

	return s.record(req.Value, fromUnit, toUnit, fromToken, toToken)
}

// Batch converts every value between the same pair of units, recording each
// conversion in order. Units are resolved before any history mutation.
func (s *Service) Batch(values []float64, from, to string) ([]domain.ConversionResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	fromUnit, fromToken, err := s.Resolve(from, domain.CategoryAll)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFromUnit, from)
	}
	toUnit, toToken, err := s.Resolve(to, domain.CategoryAll)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownToUnit, to)
	}
	if fromUnit.Category != toUnit.Category {
		return nil, fmt.Errorf("%w: %s is %s, %s is %s",
			domain.ErrCrossCategory, fromUnit.Symbol, fromUnit.Category, toUnit.Symbol, toUnit.Category)
	}

	results := make([]domain.ConversionResult, 0, len(values))
	for _, v := range values {
		res, err := s.record(v, fromUnit, toUnit, fromToken, toToken)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Info looks a unit up across every category.
func (s *Service) Info(raw string) (domain.Unit, error) {
	unit, _, err := s.Resolve(raw, domain.CategoryAll)
	return unit, err
}

func (s *Service) record(value float64, fromUnit, toUnit domain.Unit, fromToken, toToken string) (domain.ConversionResult, error) {
	result, err := ConvertUnits(value, fromUnit, toUnit)
	if err != nil {
		return domain.ConversionResult{}, err
	}

	res := domain.ConversionResult{FromUnit: fromUnit, ToUnit: toUnit}
	if math.Abs(value) >= domain.PrecisionWarningThreshold || math.Abs(result) >= domain.PrecisionWarningThreshold {
		s.Logger.Warn("precision warning", map[string]interface{}{"value": value, "result": result})
		res.Warnings = append(res.Warnings, precisionWarning)
	}

	s.Logger.Debug("converted", map[string]interface{}{
		"from":   fromToken,
		"to":     toToken,
		"value":  value,
		"result": result,
	})

	entry, err := s.History.Append(fromToken, toToken, value, result)
	if err != nil {
		s.Logger.Warn("could not save history", map[string]interface{}{
			"path":  s.History.Path(),
			"error": err.Error(),
		})
		res.Warnings = append(res.Warnings, fmt.Sprintf("Error: could not save history: %v", err))
	}
	res.Entry = entry
	return res, nil
}
