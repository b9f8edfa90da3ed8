package enums

import "fmt"

// NotificationStatus tracks delivery state in the admin notification log.
type NotificationStatus string

const (
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
	NotificationStatusPending NotificationStatus = "pending"
)

var validNotificationStatuses = []NotificationStatus{
	NotificationStatusSent,
	NotificationStatusFailed,
	NotificationStatusPending,
}

func (n NotificationStatus) IsValid() bool {
	for _, candidate := range validNotificationStatuses {
		if candidate == n {
			return true
		}
	}
	return false
}

// ParseNotificationStatus converts raw strings into NotificationStatus.
func ParseNotificationStatus(value string) (NotificationStatus, error) {
	for _, candidate := range validNotificationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid notification status %q", value)
}

// NotificationType labels the transactional emails sent by the backend.
type NotificationType string

const (
	NotificationTypeOrderConfirmation NotificationType = "order_confirmation"
	NotificationTypeOrderShipped      NotificationType = "order_shipped"
	NotificationTypeOrderCancelled    NotificationType = "order_cancelled"
	NotificationTypePasswordReset     NotificationType = "password_reset"
)

var validNotificationTypes = []NotificationType{
	NotificationTypeOrderConfirmation,
	NotificationTypeOrderShipped,
	NotificationTypeOrderCancelled,
	NotificationTypePasswordReset,
}

// IsValid checks whether the given type matches the canonical enum.
func (n NotificationType) IsValid() bool {
	for _, candidate := range validNotificationTypes {
		if candidate == n {
			return true
		}
	}
	return false
}
