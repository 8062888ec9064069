package rest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/wodnd0131/kiwes-api/internal/model"
)

const requestDateLayout = "2006-01-02"

// clubFromRequest turns a validated article request into a Club. The gender
// string is the only enum crossing the boundary here; language and category
// codes are resolved against their tables inside the transaction.
func clubFromRequest(req model.ClubArticleRequest) (model.Club, error) {
	gender, err := model.ParseGender(req.Gender)
	if err != nil {
		return model.Club{}, err
	}

	// Layouts are enforced by the datetime validator tag.
	date, _ := time.Parse(requestDateLayout, req.Date)
	dueTo, _ := time.Parse(requestDateLayout, req.DueTo)

	return model.Club{
		Date:            date,
		DueTo:           dueTo,
		Cost:            req.Cost,
		MaxPeople:       req.MaxPeople,
		Gender:          gender,
		Title:           req.Title,
		Content:         req.Content,
		LocationKeyword: req.LocationKeyword,
		Location:        req.Location,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}, nil
}

// requireHost rejects callers that do not hold the club's host row.
func (api *API) requireHost(ctx context.Context, clubID, memberID uuid.UUID) error {
	var isHost bool
	err := api.DB.QueryRow(ctx, `
        SELECT is_host FROM club_members WHERE club_id = $1 AND member_id = $2
    `, clubID, memberID).Scan(&isHost)
	if err == pgx.ErrNoRows {
		return model.ErrNotHost
	}
	if err != nil {
		return err
	}
	if !isHost {
		return model.ErrNotHost
	}
	return nil
}
