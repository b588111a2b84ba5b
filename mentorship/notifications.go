package mentorship

import (
	"context"

	"mentorConnect/model"
)

func (s *Service) ListNotifications(ctx context.Context, callerId string) ([]model.Notification, error) {
	recipient, err := parseObjectId(callerId, "user id")
	if err != nil {
		return nil, err
	}
	return s.store.GetUserNotifications(ctx, recipient)
}

func (s *Service) MarkNotificationRead(ctx context.Context, callerId, notificationId string) error {
	recipient, err := parseObjectId(callerId, "user id")
	if err != nil {
		return err
	}
	id, err := parseObjectId(notificationId, "notification id")
	if err != nil {
		return err
	}
	return s.store.MarkNotificationRead(ctx, id, recipient)
}
