package sliderule

import (
	"errors"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		radix  bool // error wraps ErrInvalidRadix
	}{
		{"radix too small", func(c *Config) { c.Radix = 1 }, true},
		{"radix not in set", func(c *Config) { c.Radix = 12 }, true},
		{"bad radix in set", func(c *Config) { c.Radices = []int{10, 40} }, true},
		{"zero radius", func(c *Config) { c.Outer.Radius = 0 }, false},
		{"inner frame below center", func(c *Config) { c.Inner.FrameDistance = -250 }, false},
		{"zero min steps", func(c *Config) { c.MinSteps = 0 }, false},
		{"negative speed", func(c *Config) { c.MaxSpeed = -1 }, false},
		{"zero drag step", func(c *Config) { c.MaxDragStep = 0 }, false},
		{"negative zoom", func(c *Config) { c.MaxZoom = -1 }, false},
		{"empty surface", func(c *Config) { c.Width = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.radix != errors.Is(err, ErrInvalidRadix) {
				t.Errorf("errors.Is(%v, ErrInvalidRadix) = %v", err, !tt.radix)
			}
		})
	}
}

func TestConfigEmptyRadicesAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Radices = nil
	cfg.Radix = 7
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if got := cfg.nextRadix(7); got != 7 {
		t.Errorf("nextRadix without a set = %d, want 7", got)
	}
}

func TestNextRadix(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct{ cur, want int }{
		{8, 10},
		{10, 16},
		{16, 8},
		{5, 8}, // not in the set restarts the cycle
	}
	for _, tt := range tests {
		if got := cfg.nextRadix(tt.cur); got != tt.want {
			t.Errorf("nextRadix(%d) = %d, want %d", tt.cur, got, tt.want)
		}
	}
}
