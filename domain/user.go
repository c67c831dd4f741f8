package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Role identifies what a user is allowed to do inside the app suite.
type Role string

// Role tokens as emitted by the backend. The facility-owner, moderator and
// post-owner roles only appear for community builds; other builds simply
// never see them.
const (
	RoleTrainer       Role = "TRAINER"
	RoleClient        Role = "CLIENT"
	RoleAdmin         Role = "ADMIN"
	RoleFacilityOwner Role = "FACILITY_OWNER"
	RoleModerator     Role = "MODERATOR"
	RolePostOwner     Role = "POST_OWNER"

	// RoleUnknown is the fallback for tokens this build does not recognize.
	RoleUnknown Role = "UNKNOWN"
)

var knownRoles = map[Role]struct{}{
	RoleTrainer:       {},
	RoleClient:        {},
	RoleAdmin:         {},
	RoleFacilityOwner: {},
	RoleModerator:     {},
	RolePostOwner:     {},
}

// ParseRole maps a raw token to a Role, falling back to RoleUnknown for
// anything the build does not recognize.
func ParseRole(s string) Role {
	r := Role(strings.ToUpper(s))
	if _, ok := knownRoles[r]; ok {
		return r
	}
	return RoleUnknown
}

// UnmarshalJSON decodes a role token with unknown-value fallback.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = ParseRole(s)
	return nil
}

// SubscriptionTier is a client's subscription plan. Only meaningful when the
// user's role is CLIENT.
type SubscriptionTier string

const (
	SubscriptionFree    SubscriptionTier = "FREE"
	SubscriptionPremium SubscriptionTier = "PREMIUM"
	SubscriptionElite   SubscriptionTier = "ELITE"

	SubscriptionUnknown SubscriptionTier = "UNKNOWN"
)

// ParseSubscriptionTier maps a raw token to a SubscriptionTier with
// unknown-value fallback.
func ParseSubscriptionTier(s string) SubscriptionTier {
	switch t := SubscriptionTier(strings.ToUpper(s)); t {
	case SubscriptionFree, SubscriptionPremium, SubscriptionElite:
		return t
	default:
		return SubscriptionUnknown
	}
}

// UnmarshalJSON decodes a subscription tier token with unknown-value fallback.
func (t *SubscriptionTier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseSubscriptionTier(s)
	return nil
}

// User is an account in the coaching suite. A single struct carries the
// superset of trainer, client and community fields; TrainerTier only applies
// when Role is TRAINER and SubscriptionTier only when Role is CLIENT.
type User struct {
	ID               string            `json:"id"`
	Email            *string           `json:"email,omitempty"`
	Role             Role              `json:"role"`
	FirstName        *string           `json:"firstName,omitempty"`
	LastName         *string           `json:"lastName,omitempty"`
	FullName         *string           `json:"fullName,omitempty"`
	PhoneNumber      *string           `json:"phoneNumber,omitempty"`
	ProfileImageURL  *string           `json:"profileImageUrl,omitempty"`
	IsActive         *bool             `json:"isActive,omitempty"`
	EmailVerified    *bool             `json:"emailVerified,omitempty"`
	TrainerID        *string           `json:"trainerId,omitempty"`
	Timezone         *string           `json:"timezone,omitempty"`
	CreatedAt        *time.Time        `json:"createdAt,omitempty"`
	LastLoginAt      *time.Time        `json:"lastLoginAt,omitempty"`
	UpdatedAt        *time.Time        `json:"updatedAt,omitempty"`
	ZipCode          *string           `json:"zipCode,omitempty"`
	City             *string           `json:"city,omitempty"`
	State            *string           `json:"state,omitempty"`
	TrainerTier      *TrainerTier      `json:"trainerTier,omitempty"`
	SubscriptionTier *SubscriptionTier `json:"subscriptionTier,omitempty"`
}

// userAlias prevents UnmarshalJSON recursion.
type userAlias User

// UnmarshalJSON decodes a user payload, enforcing the two required fields.
// Everything else is tolerated as absent.
func (u *User) UnmarshalJSON(data []byte) error {
	var a userAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.ID == "" {
		return ErrEmptyUserID
	}
	if a.Role == "" {
		return ErrMissingRole
	}
	*u = User(a)
	return nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == "" {
		return ErrEmptyUserID
	}
	if u.Role == "" {
		return ErrMissingRole
	}
	return nil
}

// DisplayName resolves a human-readable name for the user, in priority
// order: fullName, firstName (plus lastName when present), the local part of
// the email address, a formatted phone number, and finally the literal
// "User". This exact ordering is part of the contract toward the UI layer.
func (u User) DisplayName() string {
	if u.FullName != nil {
		if full := strings.TrimSpace(*u.FullName); full != "" {
			return full
		}
	}
	if u.FirstName != nil {
		if first := strings.TrimSpace(*u.FirstName); first != "" {
			if u.LastName != nil {
				if last := strings.TrimSpace(*u.LastName); last != "" {
					return first + " " + last
				}
			}
			return first
		}
	}
	if u.Email != nil {
		if at := strings.Index(*u.Email, "@"); at > 0 {
			return (*u.Email)[:at]
		}
	}
	if u.PhoneNumber != nil {
		if phone := formatPhoneNumber(*u.PhoneNumber); phone != "" {
			return phone
		}
	}
	return "User"
}

// IsTrainer reports whether the user is a trainer account.
func (u User) IsTrainer() bool { return u.Role == RoleTrainer }

// IsClient reports whether the user is a client account.
func (u User) IsClient() bool { return u.Role == RoleClient }

// Equal compares two users by value, dereferencing optional fields.
func (u User) Equal(other User) bool {
	return u.ID == other.ID &&
		u.Role == other.Role &&
		strPtrEqual(u.Email, other.Email) &&
		strPtrEqual(u.FirstName, other.FirstName) &&
		strPtrEqual(u.LastName, other.LastName) &&
		strPtrEqual(u.FullName, other.FullName) &&
		strPtrEqual(u.PhoneNumber, other.PhoneNumber) &&
		strPtrEqual(u.ProfileImageURL, other.ProfileImageURL) &&
		boolPtrEqual(u.IsActive, other.IsActive) &&
		boolPtrEqual(u.EmailVerified, other.EmailVerified) &&
		strPtrEqual(u.TrainerID, other.TrainerID) &&
		strPtrEqual(u.Timezone, other.Timezone) &&
		timePtrEqual(u.CreatedAt, other.CreatedAt) &&
		timePtrEqual(u.LastLoginAt, other.LastLoginAt) &&
		timePtrEqual(u.UpdatedAt, other.UpdatedAt) &&
		strPtrEqual(u.ZipCode, other.ZipCode) &&
		strPtrEqual(u.City, other.City) &&
		strPtrEqual(u.State, other.State) &&
		trainerTierPtrEqual(u.TrainerTier, other.TrainerTier) &&
		subscriptionTierPtrEqual(u.SubscriptionTier, other.SubscriptionTier)
}

// formatPhoneNumber renders a North-American number as (XXX) XXX-XXXX.
// Numbers that do not match that shape are returned as stored; an input with
// no digits formats to the empty string.
func formatPhoneNumber(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) == 11 && d[0] == '1' {
		d = d[1:]
	}
	if len(d) == 10 {
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	}
	if d == "" {
		return ""
	}
	return raw
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func boolPtrEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func trainerTierPtrEqual(a, b *TrainerTier) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func subscriptionTierPtrEqual(a, b *SubscriptionTier) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
