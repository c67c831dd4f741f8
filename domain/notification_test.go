package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotificationTypeFallback(t *testing.T) {
	assert.Equal(t, NotificationWorkoutReminder, ParseNotificationType("WORKOUT_REMINDER"))
	assert.Equal(t, NotificationNewMessage, ParseNotificationType("new_message"))

	// Anything the build does not know decodes to unknown, never an error.
	for _, raw := range []string{"VIDEO_CALL_STARTED", "MEAL_PLAN_READY", "", "workout-reminder"} {
		assert.Equal(t, NotificationTypeUnknown, ParseNotificationType(raw), "raw=%q", raw)
	}
}

func TestNotificationDecode(t *testing.T) {
	payload := `{
		"id":"n1","type":"WORKOUT_REMINDER","title":"Leg day",
		"body":"Squats at 6pm","isRead":false,
		"sentAt":"2025-03-01T09:00:00Z",
		"data":{"workoutId":"w9","deepLink":"pulsecoach://workouts/w9"}
	}`
	var n AppNotification
	require.NoError(t, json.Unmarshal([]byte(payload), &n))
	assert.Equal(t, NotificationWorkoutReminder, n.Type)
	assert.False(t, n.IsRead)
	require.NotNil(t, n.Data)
	require.NotNil(t, n.Data.WorkoutID)
	assert.Equal(t, "w9", *n.Data.WorkoutID)
}

func TestNotificationDecodeUnknownType(t *testing.T) {
	payload := `{"id":"n1","type":"HOLOGRAM_SESSION","title":"T","body":"B","isRead":false,"sentAt":"2025-03-01T09:00:00Z"}`
	var n AppNotification
	require.NoError(t, json.Unmarshal([]byte(payload), &n))
	assert.Equal(t, NotificationTypeUnknown, n.Type)
}

func TestNotificationDecodeRequiredFields(t *testing.T) {
	var n AppNotification
	base := map[string]any{
		"id": "n1", "type": "NEW_MESSAGE", "title": "T", "body": "B",
		"isRead": false, "sentAt": "2025-03-01T09:00:00Z",
	}
	for field, wantErr := range map[string]error{
		"id":    ErrEmptyNotificationID,
		"type":  ErrMissingNotificationType,
		"title": ErrEmptyNotificationTitle,
		"body":  ErrEmptyNotificationBody,
	} {
		payload := map[string]any{}
		for k, v := range base {
			if k != field {
				payload[k] = v
			}
		}
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.ErrorIs(t, json.Unmarshal(raw, &n), wantErr, "missing %s", field)
	}
}

func TestNotificationWithIsRead(t *testing.T) {
	n := AppNotification{
		ID: "n1", Type: NotificationNewMessage, Title: "T", Body: "B",
		SentAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	at := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	read := n.WithIsReadAt(true, at)
	assert.True(t, read.IsRead)
	require.NotNil(t, read.ReadAt)
	assert.Equal(t, at, *read.ReadAt)

	// The original is untouched.
	assert.False(t, n.IsRead)
	assert.Nil(t, n.ReadAt)

	unread := read.WithIsReadAt(false, at.Add(time.Hour))
	assert.False(t, unread.IsRead)
	assert.Nil(t, unread.ReadAt)

	// The convenience form stamps the current clock.
	now := n.WithIsRead(true)
	assert.True(t, now.IsRead)
	require.NotNil(t, now.ReadAt)
	assert.WithinDuration(t, time.Now().UTC(), *now.ReadAt, time.Minute)
}
