package normalization

import "testing"

func TestParseInputString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Technology", "technology"},
		{"  Health ", "health"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := ParseInputString(tc.in); got != tc.want {
			t.Errorf("ParseInputString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseInputStringPtr(t *testing.T) {
	if got := ParseInputStringPtr(nil); got != nil {
		t.Errorf("ParseInputStringPtr(nil) = %v, want nil", got)
	}
	in := " Remote "
	if got := ParseInputStringPtr(&in); got == nil || *got != "remote" {
		t.Errorf("ParseInputStringPtr(%q) = %v, want remote", in, got)
	}
}

func TestParsePlaceNameKeepsCasing(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{" Córdoba ", "Córdoba"},
		{"Villa María", "Villa María"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ParsePlaceName(tc.in); got != tc.want {
			t.Errorf("ParsePlaceName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
