package postgresql

import (
	"context"
	"fmt"

	"github.com/baynunah-hr/hr-backend-go/internal/domain/notification"
	"github.com/baynunah-hr/hr-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepositoryImpl{db: db}
}

func (r *notificationRepositoryImpl) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (id, user_id, title, message, type, link, is_read, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, FALSE, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, n.UserID, n.Title, n.Message, n.Type, n.Link).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to insert notification: %w", err)
	}
	return n, nil
}

func (r *notificationRepositoryImpl) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT n.id, n.user_id, n.title, n.message, n.type, n.link, n.is_read, n.created_at
		FROM notifications n
		WHERE n.user_id = $1
		  AND ($2 = FALSE OR n.is_read = FALSE)
		ORDER BY n.created_at DESC
		LIMIT 100
	`

	rows, err := q.Query(ctx, query, userID, unreadOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []notification.Notification
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Link, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return items, nil
}

func (r *notificationRepositoryImpl) MarkRead(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	return err
}
