package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/wodnd0131/kiwes-api/internal/model"
)

func (api *API) GetMemberByID(ctx context.Context, id string) (model.Member, error) {
	var member model.Member
	stmt := `SELECT id, nickname, profile_img, checked_at, created_at, updated_at FROM members WHERE id = $1`

	err := api.DB.QueryRow(ctx, stmt, id).Scan(
		&member.ID,
		&member.Nickname,
		&member.ProfileImg,
		&member.CheckedAt,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return model.Member{}, model.ErrMemberNotFound
	}
	if err != nil {
		return model.Member{}, err
	}
	return member, nil
}

// GetMemberLanguageIDs returns the language ids a member declared on their
// profile. An empty result is normal and drives an empty recommendation set.
func (api *API) GetMemberLanguageIDs(ctx context.Context, memberID uuid.UUID) ([]int64, error) {
	stmt := `SELECT language_id FROM member_languages WHERE member_id = $1`

	rows, err := api.DB.Query(ctx, stmt, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
