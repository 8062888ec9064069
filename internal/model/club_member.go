package model

import (
	"time"

	"github.com/google/uuid"
)

// ClubMember is the join row between a member and a club. The host's row is
// created with the club, pre-approved, and never leaves that state; applicant
// rows move APPLIED -> APPROVED or are deleted by deny/kick.
type ClubMember struct {
	ID         uuid.UUID `json:"id"`
	ClubID     uuid.UUID `json:"club_id"`
	MemberID   uuid.UUID `json:"member_id"`
	IsHost     bool      `json:"is_host"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

// Approve admits the applicant. The capacity check and the counter increment
// belong to one atomic step; callers must hold the club row locked.
func (cm *ClubMember) Approve(club *Club) error {
	if club.Full() {
		return ErrOverCapacity
	}
	cm.IsApproved = true
	club.CurrentPeople++
	return nil
}

// Deny rejects a pending application. Approved rows are out of reach.
func (cm *ClubMember) Deny() error {
	if cm.IsApproved {
		return ErrAlreadyApproved
	}
	return nil
}

// Kick removes an approved member and gives the seat back. The host's own
// row can never be kicked.
func (cm *ClubMember) Kick(club *Club) error {
	if cm.IsHost {
		return ErrNotHost
	}
	club.CurrentPeople--
	return nil
}
