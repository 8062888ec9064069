package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wodnd0131/kiwes-api/internal/model"
)

const uniqueViolation = "23505"

// ApplyToClub inserts an APPLIED row. The (club_id, member_id) unique
// constraint backs the single-application rule, so a duplicate insert comes
// back as ErrAlreadyApplied instead of a second row.
func (api *API) ApplyToClub(ctx context.Context, clubID, memberID uuid.UUID) error {
	_, err := api.DB.Exec(ctx, `
        INSERT INTO club_members (id, club_id, member_id, is_host, is_approved, created_at)
        VALUES ($1, $2, $3, FALSE, FALSE, NOW())
    `, uuid.New(), clubID, memberID)
	if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == uniqueViolation && pgErr.ConstraintName == "club_members_club_id_member_id_key" {
		return model.ErrAlreadyApplied
	}
	return err
}

// GetClubMember loads the membership row for a (club, member) pair.
func (api *API) GetClubMember(ctx context.Context, clubID, memberID uuid.UUID) (model.ClubMember, error) {
	var cm model.ClubMember
	err := api.DB.QueryRow(ctx, `
        SELECT id, club_id, member_id, is_host, is_approved, created_at
        FROM club_members
        WHERE club_id = $1 AND member_id = $2
    `, clubID, memberID).Scan(&cm.ID, &cm.ClubID, &cm.MemberID, &cm.IsHost, &cm.IsApproved, &cm.CreatedAt)
	if err == pgx.ErrNoRows {
		return model.ClubMember{}, model.ErrMemberNotFound
	}
	return cm, err
}

// FindClubHost returns the club's host row. Every club has exactly one;
// absence is a data-integrity bug surfaced as ErrHostNotFound.
func (api *API) FindClubHost(ctx context.Context, clubID uuid.UUID) (model.ClubMember, error) {
	var cm model.ClubMember
	err := api.DB.QueryRow(ctx, `
        SELECT id, club_id, member_id, is_host, is_approved, created_at
        FROM club_members
        WHERE club_id = $1 AND is_host = TRUE
    `, clubID).Scan(&cm.ID, &cm.ClubID, &cm.MemberID, &cm.IsHost, &cm.IsApproved, &cm.CreatedAt)
	if err == pgx.ErrNoRows {
		return model.ClubMember{}, model.ErrHostNotFound
	}
	return cm, err
}

// ApproveMember admits an applicant. The club row is locked for the duration
// of the transaction so concurrent approvals cannot jointly overshoot
// max_people: each one re-reads current_people under the lock.
func (api *API) ApproveMember(ctx context.Context, clubID, memberID uuid.UUID) (model.ClubJoinedResponse, error) {
	var joined model.ClubJoinedResponse

	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		var club model.Club
		err := tx.QueryRow(ctx, `
            SELECT id, title, max_people, current_people
            FROM clubs
            WHERE id = $1
            FOR UPDATE
        `, clubID).Scan(&club.ID, &club.Title, &club.MaxPeople, &club.CurrentPeople)
		if err == pgx.ErrNoRows {
			return model.ErrClubNotFound
		}
		if err != nil {
			return err
		}

		var cm model.ClubMember
		var nickname string
		err = tx.QueryRow(ctx, `
            SELECT cm.id, cm.club_id, cm.member_id, cm.is_host, cm.is_approved, m.nickname
            FROM club_members cm
            JOIN members m ON m.id = cm.member_id
            WHERE cm.club_id = $1 AND cm.member_id = $2
        `, clubID, memberID).Scan(&cm.ID, &cm.ClubID, &cm.MemberID, &cm.IsHost, &cm.IsApproved, &nickname)
		if err == pgx.ErrNoRows {
			return model.ErrMemberNotFound
		}
		if err != nil {
			return err
		}

		if err := cm.Approve(&club); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `
            UPDATE club_members SET is_approved = TRUE WHERE id = $1
        `, cm.ID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
            UPDATE clubs SET current_people = $2, updated_at = NOW() WHERE id = $1
        `, clubID, club.CurrentPeople); err != nil {
			return err
		}

		joined = model.ClubJoinedResponse{
			ClubID:              club.ID,
			ClubTitle:           club.Title,
			ParticipantID:       cm.MemberID,
			ParticipantNickname: nickname,
		}
		return nil
	})
	if err != nil {
		return model.ClubJoinedResponse{}, err
	}
	return joined, nil
}

// DenyMember deletes a pending application. Approved rows are rejected with
// ErrAlreadyApproved and left untouched.
func (api *API) DenyMember(ctx context.Context, clubID, memberID uuid.UUID) error {
	return api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		var cm model.ClubMember
		err := tx.QueryRow(ctx, `
            SELECT id, club_id, member_id, is_host, is_approved, created_at
            FROM club_members
            WHERE club_id = $1 AND member_id = $2
        `, clubID, memberID).Scan(&cm.ID, &cm.ClubID, &cm.MemberID, &cm.IsHost, &cm.IsApproved, &cm.CreatedAt)
		if err == pgx.ErrNoRows {
			return model.ErrMemberNotFound
		}
		if err != nil {
			return err
		}

		if err := cm.Deny(); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM club_members WHERE id = $1`, cm.ID)
		return err
	})
}

// KickMember deletes an approved member's row and gives the seat back, under
// the same club-row lock as ApproveMember.
func (api *API) KickMember(ctx context.Context, clubID, memberID uuid.UUID) error {
	return api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		var club model.Club
		err := tx.QueryRow(ctx, `
            SELECT id, title, max_people, current_people
            FROM clubs
            WHERE id = $1
            FOR UPDATE
        `, clubID).Scan(&club.ID, &club.Title, &club.MaxPeople, &club.CurrentPeople)
		if err == pgx.ErrNoRows {
			return model.ErrClubNotFound
		}
		if err != nil {
			return err
		}

		var cm model.ClubMember
		err = tx.QueryRow(ctx, `
            SELECT id, club_id, member_id, is_host, is_approved, created_at
            FROM club_members
            WHERE club_id = $1 AND member_id = $2
        `, clubID, memberID).Scan(&cm.ID, &cm.ClubID, &cm.MemberID, &cm.IsHost, &cm.IsApproved, &cm.CreatedAt)
		if err == pgx.ErrNoRows {
			return model.ErrMemberNotFound
		}
		if err != nil {
			return err
		}

		if err := cm.Kick(&club); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM club_members WHERE id = $1`, cm.ID); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
            UPDATE clubs SET current_people = $2, updated_at = NOW() WHERE id = $1
        `, clubID, club.CurrentPeople)
		return err
	})
}
