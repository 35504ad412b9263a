package processor

import "testing"

func TestNextSequenceNumber(t *testing.T) {
	cases := []struct {
		last string
		want string
	}{
		{"", "00001"},
		{"00001", "00002"},
		{"00042", "00043"},
		{"not-a-number", "00001"},
		{"INV-7", "00001"},
		{"00099", "00100"},
		{"99999", "100000"},
	}
	for _, tc := range cases {
		if got := nextSequenceNumber(tc.last); got != tc.want {
			t.Errorf("nextSequenceNumber(%q) = %q, want %q", tc.last, got, tc.want)
		}
	}
}
