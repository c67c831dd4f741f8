package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// FollowStatus is the state of a follow edge as reported by the ACTION
// endpoints (follow/unfollow/block). It is deliberately a separate type from
// FollowRelationshipStatus, which the CHECK endpoints return: the two
// enumerations overlap in meaning but not in tokens, and the backend treats
// them as distinct contracts.
type FollowStatus string

const (
	FollowActive  FollowStatus = "ACTIVE"
	FollowPending FollowStatus = "PENDING"
	FollowBlocked FollowStatus = "BLOCKED"

	FollowStatusUnknown FollowStatus = "UNKNOWN"
)

// ParseFollowStatus maps a raw token to a FollowStatus with unknown-value
// fallback.
func ParseFollowStatus(s string) FollowStatus {
	switch t := FollowStatus(strings.ToUpper(s)); t {
	case FollowActive, FollowPending, FollowBlocked:
		return t
	default:
		return FollowStatusUnknown
	}
}

// UnmarshalJSON decodes a follow status token with unknown-value fallback.
func (s *FollowStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseFollowStatus(raw)
	return nil
}

// FollowRelationshipStatus is the state of a follow edge as reported by the
// relationship CHECK endpoints.
type FollowRelationshipStatus string

const (
	RelationshipNone      FollowRelationshipStatus = "NONE"
	RelationshipPending   FollowRelationshipStatus = "PENDING"
	RelationshipFollowing FollowRelationshipStatus = "FOLLOWING"

	RelationshipUnknown FollowRelationshipStatus = "UNKNOWN"
)

// ParseFollowRelationshipStatus maps a raw token to a
// FollowRelationshipStatus with unknown-value fallback.
func ParseFollowRelationshipStatus(s string) FollowRelationshipStatus {
	switch t := FollowRelationshipStatus(strings.ToUpper(s)); t {
	case RelationshipNone, RelationshipPending, RelationshipFollowing:
		return t
	default:
		return RelationshipUnknown
	}
}

// UnmarshalJSON decodes a relationship status token with unknown-value
// fallback.
func (s *FollowRelationshipStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseFollowRelationshipStatus(raw)
	return nil
}

// FollowButtonStatus is the state of the follow button in profile and search
// views. Part of the contract toward the UI layer.
type FollowButtonStatus string

const (
	ButtonFollow    FollowButtonStatus = "FOLLOW"
	ButtonRequested FollowButtonStatus = "REQUESTED"
	ButtonFollowing FollowButtonStatus = "FOLLOWING"
)

// ButtonStatus maps the relationship state onto the follow button: no
// relationship (or an unknown one) offers Follow, a pending request shows
// Requested, an established edge shows Following.
func (s FollowRelationshipStatus) ButtonStatus() FollowButtonStatus {
	switch s {
	case RelationshipPending:
		return ButtonRequested
	case RelationshipFollowing:
		return ButtonFollowing
	default:
		return ButtonFollow
	}
}

// UserSummary is the compact user shape embedded in follow lists and
// requests.
type UserSummary struct {
	ID              string  `json:"id"`
	FullName        *string `json:"fullName,omitempty"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty"`
	Role            *Role   `json:"role,omitempty"`
}

// FollowRequestContent is one incoming follow request.
type FollowRequestContent struct {
	ID        string       `json:"id"`
	Requester *UserSummary `json:"requester,omitempty"`
	CreatedAt *time.Time   `json:"createdAt,omitempty"`
}

// FollowStats aggregates a user's social-graph counters.
type FollowStats struct {
	FollowersCount       int  `json:"followersCount"`
	FollowingCount       int  `json:"followingCount"`
	PendingRequestsCount *int `json:"pendingRequestsCount,omitempty"`
}
