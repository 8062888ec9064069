package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/wodnd0131/kiwes-api/internal/model"
)

func (api *API) GetClubByID(ctx context.Context, id uuid.UUID) (model.Club, error) {
	query := `
        SELECT id, date, due_to, cost, max_people, current_people, gender, title,
               content, location_keyword, location, latitude, longitude,
               thumbnail_url, created_at, updated_at
        FROM clubs
        WHERE id = $1
    `
	var club model.Club
	err := api.DB.QueryRow(ctx, query, id).Scan(
		&club.ID, &club.Date, &club.DueTo, &club.Cost, &club.MaxPeople,
		&club.CurrentPeople, &club.Gender, &club.Title, &club.Content,
		&club.LocationKeyword, &club.Location, &club.Latitude, &club.Longitude,
		&club.ThumbnailURL, &club.CreatedAt, &club.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return model.Club{}, model.ErrClubNotFound
	}
	return club, err
}

// CreateClub persists a new listing together with its language rows, its
// single category row and the host's pre-approved membership, all in one
// transaction. The host is the first approved member, so current_people
// starts at 1.
func (api *API) CreateClub(ctx context.Context, club model.Club, languages []string, category string, host model.Member) (model.ClubCreatedResponse, error) {
	club.ID = uuid.New()
	club.CurrentPeople = 1

	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
            INSERT INTO clubs (id, date, due_to, cost, max_people, current_people,
                gender, title, content, location_keyword, location, latitude,
                longitude, thumbnail_url, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
        `, club.ID, club.Date, club.DueTo, club.Cost, club.MaxPeople, club.CurrentPeople,
			club.Gender, club.Title, club.Content, club.LocationKeyword, club.Location,
			club.Latitude, club.Longitude, club.ThumbnailURL)
		if err != nil {
			return err
		}

		if err := insertClubLanguages(ctx, tx, club.ID, languages); err != nil {
			return err
		}

		var categoryID int64
		err = tx.QueryRow(ctx, `SELECT id FROM categories WHERE code = $1`, category).Scan(&categoryID)
		if err == pgx.ErrNoRows {
			return errors.Wrapf(model.ErrCategoryNotFound, "%q", category)
		}
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
            INSERT INTO club_categories (club_id, category_id) VALUES ($1, $2)
        `, club.ID, categoryID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
            INSERT INTO club_members (id, club_id, member_id, is_host, is_approved, created_at)
            VALUES ($1, $2, $3, TRUE, TRUE, NOW())
        `, uuid.New(), club.ID, host.ID)
		return err
	})
	if err != nil {
		return model.ClubCreatedResponse{}, err
	}

	return model.ClubCreatedResponse{
		ClubID:        club.ID,
		ClubTitle:     club.Title,
		HostID:        host.ID,
		HostNickname:  host.Nickname,
		ClubMaxPeople: club.MaxPeople,
	}, nil
}

// UpdateClub overwrites every scalar field and replaces the language set
// wholesale. The category row is updated in place; a club without one is a
// data-integrity failure, not a create-if-missing.
func (api *API) UpdateClub(ctx context.Context, clubID uuid.UUID, club model.Club, languages []string, category string, host model.Member) (model.ClubCreatedResponse, error) {
	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
            UPDATE clubs
            SET date = $2, due_to = $3, cost = $4, max_people = $5, gender = $6,
                title = $7, content = $8, location_keyword = $9, location = $10,
                latitude = $11, longitude = $12, updated_at = NOW()
            WHERE id = $1
        `, clubID, club.Date, club.DueTo, club.Cost, club.MaxPeople, club.Gender,
			club.Title, club.Content, club.LocationKeyword, club.Location,
			club.Latitude, club.Longitude)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return model.ErrClubNotFound
		}

		// Wholesale replace, not a diff. An empty list leaves zero rows.
		_, err = tx.Exec(ctx, `DELETE FROM club_languages WHERE club_id = $1`, clubID)
		if err != nil {
			return err
		}
		if err := insertClubLanguages(ctx, tx, clubID, languages); err != nil {
			return err
		}

		var categoryID int64
		err = tx.QueryRow(ctx, `SELECT id FROM categories WHERE code = $1`, category).Scan(&categoryID)
		if err == pgx.ErrNoRows {
			return errors.Wrapf(model.ErrCategoryNotFound, "%q", category)
		}
		if err != nil {
			return err
		}
		tag, err = tx.Exec(ctx, `
            UPDATE club_categories SET category_id = $2 WHERE club_id = $1
        `, clubID, categoryID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errors.Wrap(model.ErrCategoryNotFound, "club has no category row")
		}
		return nil
	})
	if err != nil {
		return model.ClubCreatedResponse{}, err
	}

	return model.ClubCreatedResponse{
		ClubID:        clubID,
		ClubTitle:     club.Title,
		HostID:        host.ID,
		HostNickname:  host.Nickname,
		ClubMaxPeople: club.MaxPeople,
	}, nil
}

// DeleteClub removes the listing. Languages, category, members, hearts and
// alarms go with it through the FK cascade.
func (api *API) DeleteClub(ctx context.Context, clubID uuid.UUID) error {
	tag, err := api.DB.Exec(ctx, `DELETE FROM clubs WHERE id = $1`, clubID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrClubNotFound
	}
	return nil
}

// SetClubThumbnail assigns a fresh opaque reference as the thumbnail.
func (api *API) SetClubThumbnail(ctx context.Context, clubID uuid.UUID) (string, error) {
	thumbnail := uuid.New().String()

	tag, err := api.DB.Exec(ctx, `
        UPDATE clubs SET thumbnail_url = $2, updated_at = NOW() WHERE id = $1
    `, clubID, thumbnail)
	if err != nil {
		return "", err
	}
	if tag.RowsAffected() == 0 {
		return "", model.ErrClubNotFound
	}
	return thumbnail, nil
}

func insertClubLanguages(ctx context.Context, tx pgx.Tx, clubID uuid.UUID, codes []string) error {
	for _, code := range codes {
		var languageID int64
		err := tx.QueryRow(ctx, `SELECT id FROM languages WHERE code = $1`, code).Scan(&languageID)
		if err == pgx.ErrNoRows {
			return errors.Wrapf(model.ErrLanguageNotFound, "%q", code)
		}
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
            INSERT INTO club_languages (club_id, language_id) VALUES ($1, $2)
        `, clubID, languageID)
		if err != nil {
			return err
		}
	}
	return nil
}
