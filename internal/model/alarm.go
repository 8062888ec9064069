package model

import (
	"time"

	"github.com/google/uuid"
)

type AlarmType string

const (
	AlarmApply    AlarmType = "APPLY"
	AlarmApproved AlarmType = "APPROVED"
	AlarmKicked   AlarmType = "KICKED"
)

// AlarmRetention is how long an alarm row is kept before the sweep removes it.
const AlarmRetention = 3 * 24 * time.Hour

type Alarm struct {
	ID        int64     `json:"id"`
	MemberID  uuid.UUID `json:"member_id"`
	ClubID    uuid.UUID `json:"club_id"`
	Type      AlarmType `json:"type"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Sweepable reports whether the alarm has outlived the retention window.
func (a *Alarm) Sweepable(now time.Time) bool {
	return a.CreatedAt.Add(AlarmRetention).Before(now)
}

// UnseenSince reports whether the alarm arrived after the member last
// checked their alarms.
func (a *Alarm) UnseenSince(checked time.Time) bool {
	return a.CreatedAt.After(checked)
}

type AlarmResponse struct {
	ID        int64     `json:"id"`
	ClubID    uuid.UUID `json:"club_id"`
	Type      AlarmType `json:"type"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
