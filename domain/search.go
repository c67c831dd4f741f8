package domain

// Raw follow-status literals returned by the search endpoints. The search
// contract compares these strings directly rather than going through
// FollowRelationshipStatus; the literals happen to mirror that enum's tokens
// today, but the backend treats them as an independent surface, so they are
// kept as plain strings here to avoid silent drift if either side changes.
const (
	searchStatusFollowing = "FOLLOWING"
	searchStatusPending   = "PENDING"
)

// UserSearchDTO is one row of a user search result.
type UserSearchDTO struct {
	ID              string  `json:"id"`
	FullName        *string `json:"fullName,omitempty"`
	Username        *string `json:"username,omitempty"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty"`
	Role            *Role   `json:"role,omitempty"`
	FollowStatus    *string `json:"followStatus,omitempty"`
}

// IsFollowing reports whether the searching user already follows this row.
func (d UserSearchDTO) IsFollowing() bool {
	return d.FollowStatus != nil && *d.FollowStatus == searchStatusFollowing
}

// IsPending reports whether a follow request to this row is awaiting
// approval.
func (d UserSearchDTO) IsPending() bool {
	return d.FollowStatus != nil && *d.FollowStatus == searchStatusPending
}

// CanMessage reports whether the searching user may open a conversation with
// this row. Messaging requires an established follow.
func (d UserSearchDTO) CanMessage() bool {
	return d.IsFollowing()
}

// SocialSearchResponse groups search results by the searcher's relationship
// to each row.
type SocialSearchResponse struct {
	Following   []UserSearchDTO `json:"following,omitempty"`
	Followers   []UserSearchDTO `json:"followers,omitempty"`
	Suggestions []UserSearchDTO `json:"suggestions,omitempty"`
}

// All concatenates the three category lists in their fixed display order:
// following, then followers, then suggestions.
func (r SocialSearchResponse) All() []UserSearchDTO {
	out := make([]UserSearchDTO, 0, len(r.Following)+len(r.Followers)+len(r.Suggestions))
	out = append(out, r.Following...)
	out = append(out, r.Followers...)
	out = append(out, r.Suggestions...)
	return out
}
