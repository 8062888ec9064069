package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Gender is the club's gender restriction. Requests carry it as a string;
// ParseGender is the only way one enters the system.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderAll    Gender = "ALL"
)

func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderMale, GenderFemale, GenderAll:
		return Gender(s), nil
	default:
		return "", errors.Wrapf(ErrInvalidGender, "%q", s)
	}
}

type Club struct {
	ID              uuid.UUID `json:"id"`
	Date            time.Time `json:"date"`
	DueTo           time.Time `json:"due_to"`
	Cost            int       `json:"cost"`
	MaxPeople       int       `json:"max_people"`
	CurrentPeople   int       `json:"current_people"`
	Gender          Gender    `json:"gender"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	LocationKeyword string    `json:"location_keyword"`
	Location        string    `json:"location"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Full reports whether the club has no remaining capacity. The host counts
// towards CurrentPeople from creation.
func (c *Club) Full() bool {
	return c.CurrentPeople >= c.MaxPeople
}

// Expired reports whether the application deadline has passed.
func (c *Club) Expired(now time.Time) bool {
	return c.DueTo.Before(now)
}

// ClubArticleRequest is the create/update payload for a club listing.
type ClubArticleRequest struct {
	Date            string   `json:"date" validate:"required,datetime=2006-01-02"`
	DueTo           string   `json:"due_to" validate:"required,datetime=2006-01-02"`
	Cost            int      `json:"cost" validate:"min=0"`
	MaxPeople       int      `json:"max_people" validate:"required,min=1"`
	Gender          string   `json:"gender" validate:"required"`
	Title           string   `json:"title" validate:"required"`
	Content         string   `json:"content" validate:"required"`
	LocationKeyword string   `json:"location_keyword"`
	Location        string   `json:"location"`
	Latitude        float64  `json:"latitude" validate:"latitude"`
	Longitude       float64  `json:"longitude" validate:"longitude"`
	Languages       []string `json:"languages"`
	Category        string   `json:"category" validate:"required"`
}

type ClubCreatedResponse struct {
	ClubID        uuid.UUID `json:"club_id"`
	ClubTitle     string    `json:"club_title"`
	HostID        uuid.UUID `json:"host_id"`
	HostNickname  string    `json:"host_nickname"`
	ClubMaxPeople int       `json:"club_max_people"`
}

type ClubJoinedResponse struct {
	ClubID              uuid.UUID `json:"club_id"`
	ClubTitle           string    `json:"club_title"`
	ParticipantID       uuid.UUID `json:"participant_id"`
	ParticipantNickname string    `json:"participant_nickname"`
}

// PopularClubResponse is the decorated row shape shared by the popular,
// recommended and popular-random rankings.
type PopularClubResponse struct {
	ClubID         uuid.UUID   `json:"club_id"`
	Title          string      `json:"title"`
	ThumbnailURL   string      `json:"thumbnail_url"`
	Date           time.Time   `json:"date"`
	DueTo          time.Time   `json:"due_to"`
	Location       string      `json:"location"`
	CurrentPeople  int         `json:"current_people"`
	MaxPeople      int         `json:"max_people"`
	HostProfileImg string      `json:"host_profile_img"`
	IsHeart        HeartStatus `json:"is_heart"`
}
