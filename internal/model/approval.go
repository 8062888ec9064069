package model

import (
	"time"

	"github.com/google/uuid"
)

// ClubApprovalRequestSimple is one "my club" entry on the approval screen.
type ClubApprovalRequestSimple struct {
	ClubID        uuid.UUID `json:"club_id"`
	Title         string    `json:"title"`
	CurrentPeople int       `json:"current_people"`
}

// ClubApprovalWaitingSimple is one "club I'm waiting on" entry.
type ClubApprovalWaitingSimple struct {
	ClubID         uuid.UUID   `json:"club_id"`
	Title          string      `json:"title"`
	ThumbnailImage string      `json:"thumbnail_image"`
	Date           time.Time   `json:"date"`
	Location       string      `json:"location"`
	Languages      []string    `json:"languages"`
	IsHeart        HeartStatus `json:"is_heart"`
}

// ClubApprovalResponse is the at-a-glance first page: top two of each list.
type ClubApprovalResponse struct {
	Requests []ClubApprovalRequestSimple `json:"requests"`
	Waitings []ClubApprovalWaitingSimple `json:"waitings"`
}

// ClubWaitingMember is one pending applicant as shown to the host.
type ClubWaitingMember struct {
	MemberID      uuid.UUID `json:"member_id"`
	Nickname      string    `json:"nickname"`
	ProfileImgURL string    `json:"profile_img_url"`
}
