package model

import (
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestParseGender(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Gender
		wantErr bool
	}{
		{"male", "MALE", GenderMale, false},
		{"female", "FEMALE", GenderFemale, false},
		{"all", "ALL", GenderAll, false},
		{"lowercase is rejected", "male", "", true},
		{"empty", "", "", true},
		{"unknown value", "OTHER", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseGender(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidGender) {
					t.Errorf("ParseGender(%q) error = %v; want ErrInvalidGender", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGender(%q) returned error %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseGender(%q) = %q; want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestClubFull(t *testing.T) {
	club := Club{MaxPeople: 2, CurrentPeople: 1}
	if club.Full() {
		t.Error("club with a free seat reported full")
	}

	club.CurrentPeople = 2
	if !club.Full() {
		t.Error("club at capacity not reported full")
	}
}

func TestClubExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	club := Club{DueTo: now.Add(24 * time.Hour)}
	if club.Expired(now) {
		t.Error("club before its deadline reported expired")
	}

	club.DueTo = now.Add(-time.Minute)
	if !club.Expired(now) {
		t.Error("club past its deadline not reported expired")
	}
}
