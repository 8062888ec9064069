package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/wodnd0131/kiwes-api/internal/model"
	"github.com/wodnd0131/kiwes-api/util/storage"
)

// ListClubsByHeartCount orders clubs by YES-heart count. The live tier only
// looks at clubs whose application deadline has not passed; the fallback
// tier drops that filter.
func (api *API) ListClubsByHeartCount(ctx context.Context, includeExpired bool) ([]model.Club, error) {
	query := `
        SELECT c.id, c.title, c.thumbnail_url, c.date, c.due_to,
               c.location_keyword, c.current_people, c.max_people
        FROM clubs c
        LEFT JOIN hearts h ON h.club_id = c.id AND h.status = 'YES'
    `
	if !includeExpired {
		query += ` WHERE c.due_to >= NOW()`
	}
	query += `
        GROUP BY c.id
        ORDER BY COUNT(h.id) DESC, c.created_at DESC
        LIMIT 5
    `

	rows, err := api.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRankedClubs(rows)
}

// ListClubsByLanguageMatch orders non-expired clubs by how many of the
// viewer's declared languages they offer. An empty id set matches nothing.
func (api *API) ListClubsByLanguageMatch(ctx context.Context, languageIDs []int64, includeExpired bool) ([]model.Club, error) {
	query := `
        SELECT c.id, c.title, c.thumbnail_url, c.date, c.due_to,
               c.location_keyword, c.current_people, c.max_people
        FROM clubs c
        JOIN club_languages cl ON cl.club_id = c.id
        WHERE cl.language_id = ANY($1)
    `
	if !includeExpired {
		query += ` AND c.due_to >= NOW()`
	}
	query += `
        GROUP BY c.id
        ORDER BY COUNT(cl.id) DESC, c.created_at DESC
        LIMIT 5
    `

	rows, err := api.DB.Query(ctx, query, languageIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRankedClubs(rows)
}

// ListRandomPopularClubs samples non-expired clubs at random. There is no
// fallback tier; an empty live set yields an empty response.
func (api *API) ListRandomPopularClubs(ctx context.Context) ([]model.Club, error) {
	rows, err := api.DB.Query(ctx, `
        SELECT c.id, c.title, c.thumbnail_url, c.date, c.due_to,
               c.location_keyword, c.current_people, c.max_people
        FROM clubs c
        WHERE c.due_to >= NOW()
        ORDER BY RANDOM()
        LIMIT 3
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRankedClubs(rows)
}

func scanRankedClubs(rows pgx.Rows) ([]model.Club, error) {
	var clubs []model.Club
	for rows.Next() {
		var club model.Club
		err := rows.Scan(
			&club.ID, &club.Title, &club.ThumbnailURL, &club.Date, &club.DueTo,
			&club.LocationKeyword, &club.CurrentPeople, &club.MaxPeople,
		)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, club)
	}
	return clubs, rows.Err()
}

// decorateRankedClubs attaches the host's profile image and the viewer's
// heart flag to every row. A club without a host row is a data-integrity
// bug and fails the whole listing.
func (api *API) decorateRankedClubs(ctx context.Context, clubs []model.Club, viewerID uuid.UUID) ([]model.PopularClubResponse, error) {
	response := make([]model.PopularClubResponse, 0, len(clubs))

	for _, club := range clubs {
		var profileImg string
		err := api.DB.QueryRow(ctx, `
            SELECT m.profile_img
            FROM club_members cm
            JOIN members m ON m.id = cm.member_id
            WHERE cm.club_id = $1 AND cm.is_host = TRUE
        `, club.ID).Scan(&profileImg)
		if err == pgx.ErrNoRows {
			return nil, model.ErrHostNotFound
		}
		if err != nil {
			return nil, err
		}

		hostProfileURL, err := api.Deps.Cloudinary.ImageURL(storage.ProfileImageFolder, profileImg)
		if err != nil {
			return nil, err
		}

		status := model.HeartNo
		err = api.DB.QueryRow(ctx, `
            SELECT status FROM hearts WHERE club_id = $1 AND member_id = $2
        `, club.ID, viewerID).Scan(&status)
		if err != nil && err != pgx.ErrNoRows {
			return nil, err
		}

		response = append(response, model.PopularClubResponse{
			ClubID:         club.ID,
			Title:          club.Title,
			ThumbnailURL:   club.ThumbnailURL,
			Date:           club.Date,
			DueTo:          club.DueTo,
			Location:       club.LocationKeyword,
			CurrentPeople:  club.CurrentPeople,
			MaxPeople:      club.MaxPeople,
			HostProfileImg: hostProfileURL,
			IsHeart:        status,
		})
	}
	return response, nil
}
