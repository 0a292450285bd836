package news

import "testing"

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Fed Raises Rates!", "fed raises rates"},
		{"  Markets   rally,  again. ", "markets rally again"},
		{"£1.2bn deal — done", "12bn deal done"},
		{"", ""},
		{"?!*", ""},
	}
	for _, tt := range tests {
		if got := normalizeTitle(tt.in); got != tt.want {
			t.Errorf("normalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "fed raises rates", "fed raises rates", 1.0},
		{"disjoint", "fed raises rates", "cup final tonight", 0.0},
		{"half", "a b c", "a b c d e f", 0.5},
		{"both empty", "", "", 0.0},
		{"one empty", "a b", "", 0.0},
	}
	for _, tt := range tests {
		got := jaccard(titleTokens(tt.a), titleTokens(tt.b))
		if got != tt.want {
			t.Errorf("%s: jaccard = %v, want %v", tt.name, got, tt.want)
		}
	}
}
