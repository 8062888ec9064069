package model

import "github.com/google/uuid"

// HeartStatus is a like flag on a club. Rankings read it; this service never
// writes it.
type HeartStatus string

const (
	HeartYes HeartStatus = "YES"
	HeartNo  HeartStatus = "NO"
)

type Heart struct {
	ID       int64       `json:"id"`
	ClubID   uuid.UUID   `json:"club_id"`
	MemberID uuid.UUID   `json:"member_id"`
	Status   HeartStatus `json:"status"`
}
