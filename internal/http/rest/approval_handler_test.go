package rest

import (
	"net/http/httptest"
	"testing"
)

func TestParseCursor(t *testing.T) {
	testCases := []struct {
		name   string
		target string
		want   int
	}{
		{"missing", "/approval/my-club", 0},
		{"first page", "/approval/my-club?cursor=0", 0},
		{"third page", "/approval/my-club?cursor=2", 2},
		{"negative falls back", "/approval/my-club?cursor=-1", 0},
		{"garbage falls back", "/approval/my-club?cursor=abc", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.target, nil)
			if got := parseCursor(r); got != tc.want {
				t.Errorf("parseCursor(%q) = %d; want %d", tc.target, got, tc.want)
			}
		})
	}
}
