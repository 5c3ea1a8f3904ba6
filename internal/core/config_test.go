package core

import "testing"

func TestSeedOrNow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	if got := cfg.SeedOrNow(); got != 42 {
		t.Errorf("SeedOrNow() = %d, expected 42", got)
	}

	cfg.Seed = 0
	if got := cfg.SeedOrNow(); got == 0 {
		t.Error("SeedOrNow() returned 0 for an unset seed")
	}
}
