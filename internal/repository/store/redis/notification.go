package redis

import (
	"context"
	"fmt"

	"github.com/fitclub/server/internal/repository/store"
)

func (r repo) getNotificationKey(notificationId string) string {
	return "notification:" + notificationId
}

func (r repo) getNotificationListKey() string {
	return "notifications"
}

func (r repo) SetNotification(ctx context.Context, params *store.SetNotificationParams) error {
	pipe := r.rc.TxPipeline()

	notification := store.Notification{
		Text:      params.Text,
		CreatedAt: params.CreatedAt,
	}
	pipe.HSet(ctx, r.getNotificationKey(params.NotificationId), notification)
	pipe.RPush(ctx, r.getNotificationListKey(), params.NotificationId)

	if err := r.executePipe(ctx, pipe); err != nil {
		return fmt.Errorf("failed to set notification: %w", err)
	}

	return nil
}

func (r repo) GetNotification(ctx context.Context, notificationId string) (store.Notification, error) {
	notificationKey := r.getNotificationKey(notificationId)
	res, err := r.rc.Exists(ctx, notificationKey).Result()
	if err != nil {
		return store.Notification{}, fmt.Errorf("failed to check if notification exists: %w", err)
	}

	if res == 0 {
		return store.Notification{}, store.ErrNotificationNotFound
	}

	var notification store.Notification
	if err := r.rc.HGetAll(ctx, notificationKey).Scan(&notification); err != nil {
		return store.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return notification, nil
}

func (r repo) GetNotificationsIds(ctx context.Context) ([]string, error) {
	notificationIds, err := r.rc.LRange(ctx, r.getNotificationListKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications ids: %w", err)
	}

	return notificationIds, nil
}
