package parse

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestInts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{"empty", "", []int{}},
		{"mixed", "1,2,-3,,abc,4", []int{1, 2, -3, 4}},
		{"double minus", "--5", []int{5}},
		{"spaces", " 10  20\t30 ", []int{10, 20, 30}},
		{"trailing minus", "7-", []int{7}},
		{"minus between", "3-4", []int{3, -4}},
		{"letters only", "abc", []int{}},
		{"leading zeros", "007,-0", []int{7, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ints(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Ints(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInts_Overflow(t *testing.T) {
	got := Ints("99999999999999999999999,-99999999999999999999999")
	if got[0] != math.MaxInt || got[1] != math.MinInt {
		t.Errorf("expected clamped values, got %v", got)
	}
}

func TestTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		ok      bool
		invalid bool
	}{
		{"", 0, false, false},
		{"   ", 0, false, false},
		{"42", 42, true, false},
		{"-7", -7, true, false},
		{" 8 ", 8, true, false},
		{"5-", 0, false, true},
		{"--5", 0, false, true},
		{"1,2", 0, false, true},
		{"x", 0, false, true},
		{"99999999999999999999999", 0, false, true},
	}

	for _, tt := range tests {
		got, ok, err := Target(tt.in)
		if tt.invalid {
			if !errors.Is(err, ErrInvalidTarget) {
				t.Errorf("Target(%q) error = %v, want ErrInvalidTarget", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Target(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want || ok != tt.ok {
			t.Errorf("Target(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestArray(t *testing.T) {
	values, ok, err := Array("9, 1, 5, -3")
	if err != nil || !ok {
		t.Fatalf("Array failed: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(values, []int{-3, 1, 5, 9}) {
		t.Errorf("expected sorted values, got %v", values)
	}

	if _, ok, err := Array("  "); ok || err != nil {
		t.Errorf("blank array should be a silent no-op, got ok=%v err=%v", ok, err)
	}

	if _, _, err := Array(",,-"); !errors.Is(err, ErrNoNumbers) {
		t.Errorf("expected ErrNoNumbers, got %v", err)
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]int{1, -2, 3}); got != "1,-2,3" {
		t.Errorf("Join = %q", got)
	}
	if got := Join(nil); got != "" {
		t.Errorf("Join(nil) = %q", got)
	}
}
