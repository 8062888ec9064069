package model

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID         uuid.UUID `json:"id"`
	Nickname   string    `json:"nickname"`
	ProfileImg string    `json:"profile_img"`
	CheckedAt  time.Time `json:"checked_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Language struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

type Category struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}
