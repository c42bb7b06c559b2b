package utils

import "testing"

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"receipt.png", "receipt.png"},
		{"  receipt.png  ", "receipt.png"},
		{"my receipt.png", "my_receipt.png"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{"a\\b/c.png", "a_b_c.png"},
		{"", "receipt"},
		{"   ", "receipt"},
	}
	for _, c := range cases {
		if got := SanitizeFilename(c.in); got != c.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeSpace(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"a  b", "a b"},
		{"  a\tb\nc  ", "a b c"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeSpace(c.in); got != c.want {
			t.Errorf("NormalizeSpace(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{49.99, "49.99"},
		{50, "50.00"},
		{0.5, "0.50"},
		{1234.567, "1234.57"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.in); got != c.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", c.in, got, c.want)
		}
		if got := FormatUSD(c.in); got != "$"+c.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", c.in, got, "$"+c.want)
		}
	}
}
