package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaType classifies an exercise media attachment.
type MediaType string

const (
	MediaTypeVideo     MediaType = "VIDEO"
	MediaTypeThumbnail MediaType = "THUMBNAIL"
	MediaTypeImage     MediaType = "IMAGE"

	MediaTypeUnknown MediaType = "UNKNOWN"
)

// ParseMediaType maps a raw token to a MediaType. Matching is
// case-insensitive; unrecognized tokens fall back to MediaTypeUnknown.
func ParseMediaType(s string) MediaType {
	switch t := MediaType(strings.ToUpper(s)); t {
	case MediaTypeVideo, MediaTypeThumbnail, MediaTypeImage:
		return t
	default:
		return MediaTypeUnknown
	}
}

// UnmarshalJSON decodes a media type token with unknown-value fallback.
func (t *MediaType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseMediaType(s)
	return nil
}

// MediaItem is a single media attachment on an exercise. Either URL is set
// (a fully resolved link) or one of the storage keys is, to be combined with
// the configured CDN base.
type MediaItem struct {
	S3Key           *string    `json:"s3Key,omitempty"`
	Type            *MediaType `json:"type,omitempty"`
	FileName        *string    `json:"fileName,omitempty"`
	URL             *string    `json:"url,omitempty"`
	FileSizeBytes   *int64     `json:"fileSizeBytes,omitempty"`
	DurationSeconds *float64   `json:"durationSeconds,omitempty"`
	ThumbnailKey    *string    `json:"thumbnailKey,omitempty"`
}

// isType reports whether the media item is tagged with the given type.
func (m MediaItem) isType(t MediaType) bool {
	return m.Type != nil && *m.Type == t
}

// Exercise is a movement in the trainer's exercise library.
type Exercise struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Category     *string     `json:"category,omitempty"`
	Tags         []string    `json:"tags,omitempty"`
	Equipment    []string    `json:"equipment,omitempty"`
	Instructions *string     `json:"instructions,omitempty"`
	VideoS3Key   *string     `json:"videoS3Key,omitempty"`
	IsTimeBased  *bool       `json:"isTimeBased,omitempty"`
	Difficulty   *string     `json:"difficulty,omitempty"`
	CreatedAt    *time.Time  `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time  `json:"updatedAt,omitempty"`
	CreatedBy    *string     `json:"createdBy,omitempty"`
	BucketType   *string     `json:"bucketType,omitempty"`
	Media        []MediaItem `json:"media,omitempty"`
	Aliases      []string    `json:"aliases,omitempty"`
	Description  *string     `json:"description,omitempty"`
	IsPublic     *bool       `json:"isPublic,omitempty"`
}

type exerciseAlias Exercise

// UnmarshalJSON decodes an exercise payload, enforcing the required id and
// name fields.
func (e *Exercise) UnmarshalJSON(data []byte) error {
	var a exerciseAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.ID == "" {
		return ErrEmptyExerciseID
	}
	if a.Name == "" {
		return ErrEmptyExerciseName
	}
	*e = Exercise(a)
	return nil
}

// Validate checks if the Exercise has valid data.
func (e *Exercise) Validate() error {
	if e.ID == "" {
		return ErrEmptyExerciseID
	}
	if e.Name == "" {
		return ErrEmptyExerciseName
	}
	return nil
}

// Prefixes marking client-generated records that have not been saved to the
// backend yet.
var unsavedIDPrefixes = []string{"temp_", "draft_", "ai_", "new_"}

// IsPersisted reports whether the exercise exists on the backend: the ID is
// non-empty and does not carry one of the client-side prefixes (temp_,
// draft_, ai_, new_; case-insensitive).
func (e Exercise) IsPersisted() bool {
	if e.ID == "" {
		return false
	}
	lower := strings.ToLower(e.ID)
	for _, prefix := range unsavedIDPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	return true
}

// NewDraftExerciseID returns a fresh client-side exercise ID. The draft_
// prefix keeps the record recognizable as unsaved until the backend assigns
// a real ID.
func NewDraftExerciseID() string {
	return "draft_" + uuid.NewString()
}

// MediaResolver builds media URLs for exercises. The CDN base comes from
// configuration; entities never embed it.
type MediaResolver struct {
	CDNBaseURL string
}

// VideoURL resolves the exercise's video link: an explicit video media entry
// with a URL wins, then the stored videoS3Key combined with the CDN base,
// then the s3Key of a video media entry. Returns false when no source is
// available.
func (r MediaResolver) VideoURL(e Exercise) (string, bool) {
	for _, m := range e.Media {
		if m.isType(MediaTypeVideo) && m.URL != nil && *m.URL != "" {
			return *m.URL, true
		}
	}
	if e.VideoS3Key != nil && *e.VideoS3Key != "" {
		return r.join(*e.VideoS3Key), true
	}
	for _, m := range e.Media {
		if m.isType(MediaTypeVideo) && m.S3Key != nil && *m.S3Key != "" {
			return r.join(*m.S3Key), true
		}
	}
	return "", false
}

// ThumbnailURL resolves the exercise's thumbnail link: an explicit thumbnail
// media entry with a URL wins, then any media thumbnailKey, then the s3Key
// of a thumbnail or image entry, each combined with the CDN base. Returns
// false when no source is available.
func (r MediaResolver) ThumbnailURL(e Exercise) (string, bool) {
	for _, m := range e.Media {
		if m.isType(MediaTypeThumbnail) && m.URL != nil && *m.URL != "" {
			return *m.URL, true
		}
	}
	for _, m := range e.Media {
		if m.ThumbnailKey != nil && *m.ThumbnailKey != "" {
			return r.join(*m.ThumbnailKey), true
		}
	}
	for _, want := range []MediaType{MediaTypeThumbnail, MediaTypeImage} {
		for _, m := range e.Media {
			if m.isType(want) && m.S3Key != nil && *m.S3Key != "" {
				return r.join(*m.S3Key), true
			}
		}
	}
	return "", false
}

func (r MediaResolver) join(key string) string {
	return strings.TrimSuffix(r.CDNBaseURL, "/") + "/" + strings.TrimPrefix(key, "/")
}
