package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/wodnd0131/kiwes-api/internal/model"
	"github.com/wodnd0131/kiwes-api/util/storage"
)

// Approval lists page by an integer cursor: LIMIT approvalPageSize
// OFFSET cursor * approvalPageSize, most recent first.
const approvalPageSize = 10

// GetApprovalSimple builds the first approval page: the two most recent
// hosted clubs with someone waiting, and the two most recent clubs the
// member is waiting on.
func (api *API) GetApprovalSimple(ctx context.Context, memberID uuid.UUID) (model.ClubApprovalResponse, error) {
	requests, err := api.listHostedClubs(ctx, memberID, 2, 0, true)
	if err != nil {
		return model.ClubApprovalResponse{}, err
	}
	waitings, err := api.listWaitingClubs(ctx, memberID, 2, 0)
	if err != nil {
		return model.ClubApprovalResponse{}, err
	}

	return model.ClubApprovalResponse{
		Requests: requests,
		Waitings: waitings,
	}, nil
}

// ListHostedClubs pages through every club the member hosts.
func (api *API) ListHostedClubs(ctx context.Context, memberID uuid.UUID, cursor int) ([]model.ClubApprovalRequestSimple, error) {
	return api.listHostedClubs(ctx, memberID, approvalPageSize, cursor*approvalPageSize, false)
}

// ListWaitingClubs pages through every club the member has applied to but
// not been approved into.
func (api *API) ListWaitingClubs(ctx context.Context, memberID uuid.UUID, cursor int) ([]model.ClubApprovalWaitingSimple, error) {
	return api.listWaitingClubs(ctx, memberID, approvalPageSize, cursor*approvalPageSize)
}

func (api *API) listHostedClubs(ctx context.Context, memberID uuid.UUID, limit, offset int, onlyPending bool) ([]model.ClubApprovalRequestSimple, error) {
	query := `
        SELECT c.id, c.title, c.current_people
        FROM clubs c
        JOIN club_members host ON host.club_id = c.id
            AND host.member_id = $1 AND host.is_host = TRUE
    `
	if onlyPending {
		query += `
        WHERE EXISTS (
            SELECT 1 FROM club_members w
            WHERE w.club_id = c.id AND w.is_approved = FALSE
        )`
	}
	query += `
        ORDER BY c.created_at DESC
        LIMIT $2 OFFSET $3
    `

	rows, err := api.DB.Query(ctx, query, memberID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []model.ClubApprovalRequestSimple{}
	for rows.Next() {
		var req model.ClubApprovalRequestSimple
		if err := rows.Scan(&req.ClubID, &req.Title, &req.CurrentPeople); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (api *API) listWaitingClubs(ctx context.Context, memberID uuid.UUID, limit, offset int) ([]model.ClubApprovalWaitingSimple, error) {
	query := `
        SELECT c.id, c.title, c.thumbnail_url, c.date, c.location,
               COALESCE((
                   SELECT array_agg(l.code)
                   FROM club_languages cl
                   JOIN languages l ON l.id = cl.language_id
                   WHERE cl.club_id = c.id
               ), '{}'),
               COALESCE(h.status, 'NO')
        FROM clubs c
        JOIN club_members w ON w.club_id = c.id
            AND w.member_id = $1 AND w.is_host = FALSE AND w.is_approved = FALSE
        LEFT JOIN hearts h ON h.club_id = c.id AND h.member_id = $1
        ORDER BY w.created_at DESC
        LIMIT $2 OFFSET $3
    `

	rows, err := api.DB.Query(ctx, query, memberID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	waitings := []model.ClubApprovalWaitingSimple{}
	for rows.Next() {
		var waiting model.ClubApprovalWaitingSimple
		err := rows.Scan(
			&waiting.ClubID, &waiting.Title, &waiting.ThumbnailImage,
			&waiting.Date, &waiting.Location, &waiting.Languages, &waiting.IsHeart,
		)
		if err != nil {
			return nil, err
		}
		waitings = append(waitings, waiting)
	}
	return waitings, rows.Err()
}

// ListWaitingMembers pages through a club's pending applicants, oldest
// application first.
func (api *API) ListWaitingMembers(ctx context.Context, clubID uuid.UUID, cursor int) ([]model.ClubWaitingMember, error) {
	rows, err := api.DB.Query(ctx, `
        SELECT m.id, m.nickname, m.profile_img
        FROM club_members cm
        JOIN members m ON m.id = cm.member_id
        WHERE cm.club_id = $1 AND cm.is_approved = FALSE
        ORDER BY cm.created_at ASC
        LIMIT $2 OFFSET $3
    `, clubID, approvalPageSize, cursor*approvalPageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []model.ClubWaitingMember{}
	for rows.Next() {
		var member model.ClubWaitingMember
		var profileImg string
		if err := rows.Scan(&member.MemberID, &member.Nickname, &profileImg); err != nil {
			return nil, err
		}
		member.ProfileImgURL, err = api.Deps.Cloudinary.ImageURL(storage.ProfileImageFolder, profileImg)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}
