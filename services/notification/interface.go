package notification

import (
	"context"
	"fmt"

	"afspraak/config"
	"afspraak/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService sends FCM pushes to the administrator's device.
type NotificationService interface {
	NotifyAdmin(ctx context.Context, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct{}

// NewDefaultNotificationService requires an initialized FCM client.
func NewDefaultNotificationService() (*DefaultNotificationService, error) {
	if utils.FCMClient == nil {
		return nil, fmt.Errorf("notification service initialization error: FCM client is nil")
	}
	return &DefaultNotificationService{}, nil
}

// NotifyAdmin sends a push to the configured admin FCM token.
func (s *DefaultNotificationService) NotifyAdmin(ctx context.Context, title, body string, data map[string]string) error {
	token := config.AppConfig.AdminFCMToken
	if token == "" {
		return fmt.Errorf("NotifyAdmin: no admin FCM token configured")
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("NotifyAdmin: send failed: %w", err)
	}
	return nil
}
