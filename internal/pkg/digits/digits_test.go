package digits

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"09:00", "09:00"},
		{"٠٩:٠٠", "09:00"},
		{"٠١٢٣٤٥٦٧٨٩", "0123456789"},
		{"١٧:٣٠", "17:30"},
		{"٩am", "9am"},
		{"abc", "abc"},
		{"٢٢:00", "22:00"},
	}
	for _, c := range cases {
		got := Normalize(c.input)
		if got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
