package core

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{1000, "1,000"},
		{13500, "13,500"},
		{50000, "50,000"},
		{1000000, "1,000,000"},
		{1234.5, "1,234.50"},
		{0.25, "0.25"},
		{-2500, "-2,500"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPeso(t *testing.T) {
	if got := Peso(50000); got != "₱50,000" {
		t.Fatalf("Peso(50000) = %q", got)
	}
}
