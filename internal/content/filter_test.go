package content

import "testing"

func TestFilterHit(t *testing.T) {
	f := NewFilter()

	cases := []struct {
		name string
		in   []string
		hit  bool
	}{
		{"clean", []string{"New Shift", "in_progress", "TRL-9981"}, false},
		{"url", []string{"visit https://example.com"}, true},
		{"mixed case", []string{"best VPN offer"}, true},
		{"substring", []string{"arturshi777"}, true},
		{"emoji", []string{"unlock 🔒 now"}, true},
		{"later field", []string{"Check", "", "🔥 deal"}, true},
		{"empty", nil, false},
	}
	for _, tc := range cases {
		if got := f.Hit(tc.in...); got != tc.hit {
			t.Errorf("%s: Hit(%v) = %v, want %v", tc.name, tc.in, got, tc.hit)
		}
	}
}

func TestFilterCustomTokens(t *testing.T) {
	f := NewFilterTokens([]string{" SPAM ", ""})
	if !f.Hit("this is spam indeed") {
		t.Error("custom token not matched")
	}
	if f.Hit("clean text") {
		t.Error("clean text flagged")
	}
}
