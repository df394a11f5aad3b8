package utils_test

import (
	"testing"

	"github.com/matb3l/tg-bot/utils"
)

func TestParseMMR(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"1200", 1200, false},
		{" 4500 ", 4500, false},
		{"-1", 0, true},
		{"abc", 0, true},
		{"12.5", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := utils.ParseMMR(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseMMR(%q): expected error, got %d", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMMR(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMMR(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseMMRRange(t *testing.T) {
	min, max, err := utils.ParseMMRRange("1000-1500")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if min != 1000 || max != 1500 {
		t.Fatalf("got [%d, %d], want [1000, 1500]", min, max)
	}

	for _, in := range []string{"1500-1000", "1000", "a-b", "", "-5-10"} {
		if _, _, err := utils.ParseMMRRange(in); err == nil {
			t.Errorf("ParseMMRRange(%q): expected error", in)
		}
	}
}
