package model

import (
	"testing"
	"time"
)

func TestAlarmSweepable(t *testing.T) {
	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	alarm := Alarm{CreatedAt: created}

	testCases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"two days old", created.Add(2 * 24 * time.Hour), false},
		{"exactly three days old", created.Add(3 * 24 * time.Hour), false},
		{"four days old", created.Add(4 * 24 * time.Hour), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := alarm.Sweepable(tc.now); got != tc.want {
				t.Errorf("Sweepable(%v) = %v; want %v", tc.now, got, tc.want)
			}
		})
	}
}

func TestAlarmUnseenSince(t *testing.T) {
	checked := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seen := Alarm{CreatedAt: checked.Add(-time.Hour)}
	if seen.UnseenSince(checked) {
		t.Error("alarm created before the check reported unseen")
	}

	unseen := Alarm{CreatedAt: checked.Add(time.Hour)}
	if !unseen.UnseenSince(checked) {
		t.Error("alarm created after the check not reported unseen")
	}
}
