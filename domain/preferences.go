package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// EffortType says how a set's intensity is expressed: RPE (rate of perceived
// exertion), RIR (reps in reserve), or not at all, in which case weight is
// the only intensity signal. The empty value is EffortNone; unrecognized
// tokens also collapse to it.
type EffortType string

const (
	EffortRPE  EffortType = "RPE"
	EffortRIR  EffortType = "RIR"
	EffortNone EffortType = ""
)

// ParseEffortType maps a raw token to an EffortType, treating anything
// unrecognized as EffortNone.
func ParseEffortType(s string) EffortType {
	switch t := EffortType(strings.ToUpper(s)); t {
	case EffortRPE, EffortRIR:
		return t
	default:
		return EffortNone
	}
}

// UnmarshalJSON decodes an effort type token, tolerating null and unknown
// tokens as EffortNone.
func (t *EffortType) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = EffortNone
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseEffortType(s)
	return nil
}

// RecentExercise records how recently and how often a trainer has programmed
// an exercise. Score is precomputed by the backend when present; callers
// re-rank locally when it is absent.
type RecentExercise struct {
	ExerciseID string     `json:"exerciseId"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	UseCount   *int       `json:"useCount,omitempty"`
	Score      *float64   `json:"score,omitempty"`
}

// ExerciseScheme is a trainer's habitual prescription for an exercise:
// sets, a rep range or single rep count, and weight or an effort target.
type ExerciseScheme struct {
	ExerciseID  string     `json:"exerciseId"`
	Sets        *int       `json:"sets,omitempty"`
	Reps        *int       `json:"reps,omitempty"`
	RepRangeMin *int       `json:"repRangeMin,omitempty"`
	RepRangeMax *int       `json:"repRangeMax,omitempty"`
	WeightKG    *float64   `json:"weightKg,omitempty"`
	EffortType  EffortType `json:"effortType,omitempty"`
	EffortValue *float64   `json:"effortValue,omitempty"`
}

// DisplayString renders the scheme as compact set-row text, e.g.
// "3x8-12 @ RPE 8" or "4x10 @ 80kg". The three segments (sets, reps,
// effort-or-weight) are independently optional: sets and reps join with no
// separator and the effort clause is prefixed with " @ " only when effort or
// weight data exists. An empty scheme renders as "".
func (s ExerciseScheme) DisplayString() string {
	var b strings.Builder
	if s.Sets != nil {
		b.WriteString(strconv.Itoa(*s.Sets))
		b.WriteString("x")
	}
	b.WriteString(s.repText())
	if effort := s.effortText(); effort != "" {
		b.WriteString(" @ ")
		b.WriteString(effort)
	}
	return b.String()
}

// repText renders the rep segment: a range when both bounds exist, otherwise
// a single rep count, otherwise nothing.
func (s ExerciseScheme) repText() string {
	if s.RepRangeMin != nil && s.RepRangeMax != nil {
		if *s.RepRangeMin == *s.RepRangeMax {
			return strconv.Itoa(*s.RepRangeMin)
		}
		return strconv.Itoa(*s.RepRangeMin) + "-" + strconv.Itoa(*s.RepRangeMax)
	}
	if s.Reps != nil {
		return strconv.Itoa(*s.Reps)
	}
	return ""
}

// effortText renders the effort clause. An effort target wins over weight.
func (s ExerciseScheme) effortText() string {
	if s.EffortType != EffortNone && s.EffortValue != nil {
		return string(s.EffortType) + " " + formatFloat(*s.EffortValue)
	}
	if s.WeightKG != nil {
		return formatFloat(*s.WeightKG) + "kg"
	}
	return ""
}

// SmartDefaults is the resolved default prescription offered when a trainer
// adds an exercise to a workout. Source records where the numbers came from.
type SmartDefaults struct {
	Sets        int      `json:"sets"`
	Reps        int      `json:"reps"`
	RestSeconds int      `json:"restSeconds"`
	WeightKG    *float64 `json:"weightKg,omitempty"`
	Source      string   `json:"source"`
}

// Provenance tokens for SmartDefaults.Source.
const (
	DefaultsSourceFallback = "DEFAULT"
	DefaultsSourceMostUsed = "MOST_USED"
)

// FallbackDefaults is the prescription applied when no usage history exists
// for an exercise. Callers that get nil from SmartDefaultsFor apply this.
var FallbackDefaults = SmartDefaults{
	Sets:        3,
	Reps:        12,
	RestSeconds: 60,
	Source:      DefaultsSourceFallback,
}

// TrainerExercisePreferences aggregates everything the app knows about how a
// trainer likes to program: resolved defaults, recency, favorites and the
// schemes they reach for most. Pure lookup over already-fetched data; no
// caching or invalidation happens here.
type TrainerExercisePreferences struct {
	TrainerID           *string          `json:"trainerId,omitempty"`
	Defaults            *SmartDefaults   `json:"defaults,omitempty"`
	RecentExercises     []RecentExercise `json:"recentExercises,omitempty"`
	FavoriteExerciseIDs []string         `json:"favoriteExerciseIds,omitempty"`
	MostUsedSchemes     []ExerciseScheme `json:"mostUsedSchemes,omitempty"`
}

// SmartDefaultsFor looks up the trainer's most-used scheme for the exercise
// and converts it into defaults with MOST_USED provenance. Returns nil when
// no scheme matches; the caller decides whether FallbackDefaults applies.
func (p TrainerExercisePreferences) SmartDefaultsFor(exerciseID string) *SmartDefaults {
	for _, scheme := range p.MostUsedSchemes {
		if scheme.ExerciseID != exerciseID {
			continue
		}
		out := SmartDefaults{
			Sets:        FallbackDefaults.Sets,
			Reps:        FallbackDefaults.Reps,
			RestSeconds: FallbackDefaults.RestSeconds,
			WeightKG:    scheme.WeightKG,
			Source:      DefaultsSourceMostUsed,
		}
		if scheme.Sets != nil {
			out.Sets = *scheme.Sets
		}
		switch {
		case scheme.Reps != nil:
			out.Reps = *scheme.Reps
		case scheme.RepRangeMax != nil:
			out.Reps = *scheme.RepRangeMax
		}
		return &out
	}
	return nil
}

// IsFavorite reports whether the exercise is on the trainer's favorites
// list.
func (p TrainerExercisePreferences) IsFavorite(exerciseID string) bool {
	for _, id := range p.FavoriteExerciseIDs {
		if id == exerciseID {
			return true
		}
	}
	return false
}

// formatFloat renders a float without trailing zeros (8.5 -> "8.5",
// 80 -> "80").
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
