package nav

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/", "/"},
		{"//", "/"},
		{"/2023", "/2023"},
		{"/2023/", "/2023"},
		{"2023", "/2023"},
		{"/2023/summer/", "/2023/summer"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParent(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/2023/summer/beach", "/2023/summer"},
		{"/2023/summer", "/2023"},
		{"/2023", "/"},
		{"/", "/"},
		{"", "/"},
		{"/2023/summer/", "/2023"},
	}
	for _, c := range cases {
		if got := Parent(c.in); got != c.want {
			t.Errorf("Parent(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSegments(t *testing.T) {
	if got := Segments("/"); got != nil {
		t.Errorf("Segments(/) = %v, want nil", got)
	}
	got := Segments("/2023/summer")
	if len(got) != 2 || got[0] != "2023" || got[1] != "summer" {
		t.Errorf("Segments(/2023/summer) = %v", got)
	}
}

func TestDisplay(t *testing.T) {
	if got := Display("Summer%202023"); got != "Summer 2023" {
		t.Errorf("Display decoded to %q", got)
	}
	// Invalid escapes fall back to the raw value.
	if got := Display("100%"); got != "100%" {
		t.Errorf("Display(100%%) = %q", got)
	}
}
