package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// NotificationType identifies what a push/in-app notification is about.
// The backend adds types ahead of app releases, so decoding MUST map
// unrecognized tokens to NotificationTypeUnknown instead of failing; an
// older build renders an unknown notification generically rather than
// crashing.
type NotificationType string

const (
	NotificationWorkoutReminder      NotificationType = "WORKOUT_REMINDER"
	NotificationWorkoutAssigned      NotificationType = "WORKOUT_ASSIGNED"
	NotificationWorkoutCompleted     NotificationType = "WORKOUT_COMPLETED"
	NotificationWorkoutUpdated       NotificationType = "WORKOUT_UPDATED"
	NotificationWorkoutMissed        NotificationType = "WORKOUT_MISSED"
	NotificationProgramAssigned      NotificationType = "PROGRAM_ASSIGNED"
	NotificationProgramStarted       NotificationType = "PROGRAM_STARTED"
	NotificationProgramCompleted     NotificationType = "PROGRAM_COMPLETED"
	NotificationProgramUpdated       NotificationType = "PROGRAM_UPDATED"
	NotificationNewMessage           NotificationType = "NEW_MESSAGE"
	NotificationMessageReaction      NotificationType = "MESSAGE_REACTION"
	NotificationFollowRequest        NotificationType = "FOLLOW_REQUEST"
	NotificationFollowAccepted       NotificationType = "FOLLOW_ACCEPTED"
	NotificationNewFollower          NotificationType = "NEW_FOLLOWER"
	NotificationPostLiked            NotificationType = "POST_LIKED"
	NotificationPostCommented        NotificationType = "POST_COMMENTED"
	NotificationCommentReplied       NotificationType = "COMMENT_REPLIED"
	NotificationClientJoined         NotificationType = "CLIENT_JOINED"
	NotificationClientLeft           NotificationType = "CLIENT_LEFT"
	NotificationSubscriptionRenewed  NotificationType = "SUBSCRIPTION_RENEWED"
	NotificationSubscriptionExpiring NotificationType = "SUBSCRIPTION_EXPIRING"
	NotificationPaymentFailed        NotificationType = "PAYMENT_FAILED"
	NotificationSystemAnnouncement   NotificationType = "SYSTEM_ANNOUNCEMENT"
	NotificationAccountUpdate        NotificationType = "ACCOUNT_UPDATE"

	NotificationTypeUnknown NotificationType = "UNKNOWN"
)

var knownNotificationTypes = map[NotificationType]struct{}{
	NotificationWorkoutReminder:      {},
	NotificationWorkoutAssigned:      {},
	NotificationWorkoutCompleted:     {},
	NotificationWorkoutUpdated:       {},
	NotificationWorkoutMissed:        {},
	NotificationProgramAssigned:      {},
	NotificationProgramStarted:       {},
	NotificationProgramCompleted:     {},
	NotificationProgramUpdated:       {},
	NotificationNewMessage:           {},
	NotificationMessageReaction:      {},
	NotificationFollowRequest:        {},
	NotificationFollowAccepted:       {},
	NotificationNewFollower:          {},
	NotificationPostLiked:            {},
	NotificationPostCommented:        {},
	NotificationCommentReplied:       {},
	NotificationClientJoined:         {},
	NotificationClientLeft:           {},
	NotificationSubscriptionRenewed:  {},
	NotificationSubscriptionExpiring: {},
	NotificationPaymentFailed:        {},
	NotificationSystemAnnouncement:   {},
	NotificationAccountUpdate:        {},
}

// ParseNotificationType maps a raw token to a NotificationType with
// unknown-value fallback.
func ParseNotificationType(s string) NotificationType {
	t := NotificationType(strings.ToUpper(s))
	if _, ok := knownNotificationTypes[t]; ok {
		return t
	}
	return NotificationTypeUnknown
}

// UnmarshalJSON decodes a notification type token with unknown-value
// fallback. This never returns an error for a string payload.
func (t *NotificationType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseNotificationType(s)
	return nil
}

// NotificationData carries the optional deep-link references attached to a
// notification. Which fields are set depends on the type.
type NotificationData struct {
	ProgramID  *string `json:"programId,omitempty"`
	WorkoutID  *string `json:"workoutId,omitempty"`
	ExerciseID *string `json:"exerciseId,omitempty"`
	SenderID   *string `json:"senderId,omitempty"`
	PostID     *string `json:"postId,omitempty"`
	CommentID  *string `json:"commentId,omitempty"`
	DeepLink   *string `json:"deepLink,omitempty"`
}

// AppNotification is a single in-app notification.
type AppNotification struct {
	ID     string            `json:"id"`
	Type   NotificationType  `json:"type"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   *NotificationData `json:"data,omitempty"`
	IsRead bool              `json:"isRead"`
	SentAt time.Time         `json:"sentAt"`
	ReadAt *time.Time        `json:"readAt,omitempty"`
}

type appNotificationAlias AppNotification

// UnmarshalJSON decodes a notification payload, enforcing the required id,
// type, title and body fields.
func (n *AppNotification) UnmarshalJSON(data []byte) error {
	var a appNotificationAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.ID == "" {
		return ErrEmptyNotificationID
	}
	if a.Type == "" {
		return ErrMissingNotificationType
	}
	if a.Title == "" {
		return ErrEmptyNotificationTitle
	}
	if a.Body == "" {
		return ErrEmptyNotificationBody
	}
	*n = AppNotification(a)
	return nil
}

// Validate checks if the AppNotification has valid data.
func (n *AppNotification) Validate() error {
	if n.ID == "" {
		return ErrEmptyNotificationID
	}
	if n.Type == "" {
		return ErrMissingNotificationType
	}
	if n.Title == "" {
		return ErrEmptyNotificationTitle
	}
	if n.Body == "" {
		return ErrEmptyNotificationBody
	}
	return nil
}

// WithIsReadAt returns a copy of the notification with the read flag set.
// Marking read stamps ReadAt with the given time; marking unread clears it.
// The receiver is never mutated.
func (n AppNotification) WithIsReadAt(read bool, at time.Time) AppNotification {
	out := n
	out.IsRead = read
	if read {
		at := at.UTC()
		out.ReadAt = &at
	} else {
		out.ReadAt = nil
	}
	return out
}

// WithIsRead is WithIsReadAt evaluated at the current time.
func (n AppNotification) WithIsRead(read bool) AppNotification {
	return n.WithIsReadAt(read, time.Now())
}
