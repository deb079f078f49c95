package domain_test

import (
	"testing"

	"github.com/doeshing/unitconv/internal/domain"
)

func TestUnitMatches(t *testing.T) {
	meter := domain.Unit{
		Symbol:  "m",
		Scale:   domain.FactorScale{Factor: 1},
		Aliases: []string{"METER", "METRE"},
	}
	kilogram := domain.Unit{Symbol: "kg", Scale: domain.FactorScale{Factor: 1000}}

	tests := []struct {
		name  string
		unit  domain.Unit
		token string
		want  bool
	}{
		{name: "symbol", unit: meter, token: "m", want: true},
		{name: "alias", unit: meter, token: "METRE", want: true},
		{name: "upper-cased symbol is a different key", unit: meter, token: "M", want: false},
		{name: "normalized symbol key", unit: kilogram, token: "KG", want: true},
		{name: "raw symbol is not a key", unit: kilogram, token: "kg", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.unit.Matches(tt.token); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestUnitScale(t *testing.T) {
	celsius := domain.Unit{Symbol: "C", Scale: domain.AffineScale{}}
	if !celsius.IsTemperature() {
		t.Error("affine unit should report temperature")
	}
	if celsius.Factor() != 0 {
		t.Errorf("affine unit factor = %v, want 0", celsius.Factor())
	}

	foot := domain.Unit{Symbol: "ft", Scale: domain.FactorScale{Factor: 0.3048}}
	if foot.IsTemperature() {
		t.Error("factor unit should not report temperature")
	}
	if foot.Factor() != 0.3048 {
		t.Errorf("factor = %v, want 0.3048", foot.Factor())
	}
}

func TestConfigHistoryPath(t *testing.T) {
	cfg := domain.Config{History: domain.HistorySettings{
		Backend:    domain.BackendText,
		File:       "h.txt",
		SQLiteFile: "h.db",
	}}
	if got := cfg.HistoryPath(); got != "h.txt" {
		t.Errorf("HistoryPath() = %q, want h.txt", got)
	}
	cfg.History.Backend = domain.BackendSQLite
	if !cfg.UsesSQLite() || cfg.HistoryPath() != "h.db" {
		t.Errorf("sqlite backend not reflected: %+v", cfg.History)
	}
}
