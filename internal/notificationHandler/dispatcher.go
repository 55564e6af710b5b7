package handler

import (
	"context"
	"time"

	config "storelink/config/database"
)

// DispatchToAll inserts one notification row per user and returns how many
// were created. Fire-and-forget: there is no idempotency key, so a resend
// duplicates the notification.
func DispatchToAll(ctx context.Context, message, notifType string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		INSERT INTO notifications (user_id, message, type)
		SELECT id, $1, $2 FROM users
	`
	tag, err := config.Pool.Exec(ctx, query, message, notifType)
	if err != nil {
		return 0, err
	}

	broadcast(wsEvent{Message: message, Type: notifType})
	return tag.RowsAffected(), nil
}

// DispatchToUser inserts a single notification row for one recipient.
func DispatchToUser(ctx context.Context, userID, message, notifType string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := "INSERT INTO notifications (user_id, message, type) VALUES ($1, $2, $3)"
	if _, err := config.Pool.Exec(ctx, query, userID, message, notifType); err != nil {
		return err
	}

	broadcastTo(userID, wsEvent{UserID: userID, Message: message, Type: notifType})
	return nil
}
