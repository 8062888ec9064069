package rest

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/wodnd0131/kiwes-api/internal/model"
)

// postAlarm records a notification for a member. Alarm delivery failures
// never fail the operation that triggered them.
func (api *API) postAlarm(ctx context.Context, memberID, clubID uuid.UUID, alarmType model.AlarmType, content string) {
	_, err := api.DB.Exec(ctx, `
        INSERT INTO alarms (member_id, club_id, type, content, created_at)
        VALUES ($1, $2, $3, $4, NOW())
    `, memberID, clubID, alarmType, content)
	if err != nil {
		log.Println("failed to post alarm", err)
	}
}

// ListAlarms returns the member's alarms, newest first, and advances their
// last-checked timestamp so the unseen flag resets.
func (api *API) ListAlarms(ctx context.Context, memberID uuid.UUID) ([]model.AlarmResponse, error) {
	rows, err := api.DB.Query(ctx, `
        SELECT id, club_id, type, content, created_at
        FROM alarms
        WHERE member_id = $1
        ORDER BY created_at DESC
    `, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alarms := []model.AlarmResponse{}
	for rows.Next() {
		var alarm model.AlarmResponse
		if err := rows.Scan(&alarm.ID, &alarm.ClubID, &alarm.Type, &alarm.Content, &alarm.CreatedAt); err != nil {
			return nil, err
		}
		alarms = append(alarms, alarm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	_, err = api.DB.Exec(ctx, `
        UPDATE members SET checked_at = NOW(), updated_at = NOW() WHERE id = $1
    `, memberID)
	if err != nil {
		return nil, err
	}
	return alarms, nil
}

// HasUnseenAlarm reports whether any alarm arrived after the member last
// listed their alarms.
func (api *API) HasUnseenAlarm(ctx context.Context, memberID uuid.UUID) (bool, error) {
	var unseen bool
	err := api.DB.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1
            FROM alarms a
            JOIN members m ON m.id = a.member_id
            WHERE a.member_id = $1 AND a.created_at > m.checked_at
        )
    `, memberID).Scan(&unseen)
	return unseen, err
}

// SweepOldAlarms deletes every alarm past the retention window. Deleting an
// already-deleted alarm is a no-op, so the sweep is safe to run at any time.
func (api *API) SweepOldAlarms(ctx context.Context) (int64, error) {
	tag, err := api.DB.Exec(ctx, `
        DELETE FROM alarms WHERE created_at < NOW() - INTERVAL '3 days'
    `)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
