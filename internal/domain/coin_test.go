package domain

import "testing"

func TestTrendFromChange(t *testing.T) {
	t.Run("rising above +1%", func(t *testing.T) {
		if got := TrendFromChange(2.0); got != TrendRising {
			t.Errorf("Expected rising, got %s", got)
		}
	})

	t.Run("falling below -1%", func(t *testing.T) {
		if got := TrendFromChange(-2.0); got != TrendFalling {
			t.Errorf("Expected falling, got %s", got)
		}
	})

	t.Run("stable at zero", func(t *testing.T) {
		if got := TrendFromChange(0.0); got != TrendStable {
			t.Errorf("Expected stable, got %s", got)
		}
	})

	t.Run("threshold itself is stable", func(t *testing.T) {
		if got := TrendFromChange(1.0); got != TrendStable {
			t.Errorf("Expected stable at +1.0, got %s", got)
		}
		if got := TrendFromChange(-1.0); got != TrendStable {
			t.Errorf("Expected stable at -1.0, got %s", got)
		}
	})

	t.Run("just past threshold is a trend", func(t *testing.T) {
		if got := TrendFromChange(1.01); got != TrendRising {
			t.Errorf("Expected rising at +1.01, got %s", got)
		}
		if got := TrendFromChange(-1.01); got != TrendFalling {
			t.Errorf("Expected falling at -1.01, got %s", got)
		}
	})
}
