package sliderule

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestNumberFieldInsert(t *testing.T) {
	f := numberField{}
	for _, r := range "1.5e3x -+" {
		f.insert(r)
	}
	if f.text != "1.5e3" {
		t.Errorf("text = %q, want %q", f.text, "1.5e3")
	}
	v, err := f.value()
	if err != nil || v != 1500 {
		t.Errorf("value = %v, %v", v, err)
	}
}

func TestNumberFieldBackspace(t *testing.T) {
	f := numberField{text: "42"}
	f.backspace()
	if f.text != "4" {
		t.Errorf("text = %q", f.text)
	}
	f.backspace()
	f.backspace()
	if f.text != "" {
		t.Errorf("text = %q", f.text)
	}
	if _, err := f.value(); !errors.Is(err, ErrInvalidOperand) {
		t.Errorf("empty field value err = %v", err)
	}
}

func TestNumberFieldMaxLength(t *testing.T) {
	f := numberField{}
	for range maxFieldLen + 10 {
		f.insert('9')
	}
	if len(f.text) != maxFieldLen {
		t.Errorf("len = %d, want %d", len(f.text), maxFieldLen)
	}
	if f.text != strings.Repeat("9", maxFieldLen) {
		t.Errorf("text = %q", f.text)
	}
}

func TestFormatReadout(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{6, "6"},
		{2.5, "2.5"},
		{0.125, "0.125"},
		{math.NaN(), "-"},
		{math.Inf(1), "-"},
	}
	for _, tt := range tests {
		if got := formatReadout(tt.in); got != tt.want {
			t.Errorf("formatReadout(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
