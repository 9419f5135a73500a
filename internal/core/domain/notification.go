// Package domain defines the core domain models for the SkillShare client.
package domain

import "time"

// NotificationType classifies user notifications.
type NotificationType string

// Notification types emitted by the backend.
const (
	NotificationLike      NotificationType = "LIKE"
	NotificationComment   NotificationType = "COMMENT"
	NotificationFollow    NotificationType = "FOLLOW"
	NotificationCommit    NotificationType = "COMMIT"
	NotificationMilestone NotificationType = "MILESTONE"
)

// Notification is a single user notification.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Actor     *User            `json:"actor,omitempty"`
	TargetID  string           `json:"targetId,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt string           `json:"createdAt,omitempty"`
}

// CreatedAtTime parses CreatedAt. Returns the zero time when absent.
func (n *Notification) CreatedAtTime() time.Time {
	return parseBackendTime(n.CreatedAt)
}
