package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProgramStatus is the lifecycle state of a training program as stored on
// the backend. A program without an explicit status derives a display state
// from its date window instead.
type ProgramStatus string

const (
	ProgramDraft     ProgramStatus = "DRAFT"
	ProgramActive    ProgramStatus = "ACTIVE"
	ProgramPaused    ProgramStatus = "PAUSED"
	ProgramCompleted ProgramStatus = "COMPLETED"
	ProgramCancelled ProgramStatus = "CANCELLED"

	ProgramStatusUnknown ProgramStatus = "UNKNOWN"
)

// ParseProgramStatus maps a raw token to a ProgramStatus with unknown-value
// fallback.
func ParseProgramStatus(s string) ProgramStatus {
	switch t := ProgramStatus(strings.ToUpper(s)); t {
	case ProgramDraft, ProgramActive, ProgramPaused, ProgramCompleted, ProgramCancelled:
		return t
	default:
		return ProgramStatusUnknown
	}
}

// UnmarshalJSON decodes a program status token with unknown-value fallback.
func (s *ProgramStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseProgramStatus(raw)
	return nil
}

// displayString renders the status for the UI.
func (s ProgramStatus) displayString() string {
	switch s {
	case ProgramDraft:
		return "Draft"
	case ProgramActive:
		return "Active"
	case ProgramPaused:
		return "Paused"
	case ProgramCompleted:
		return "Completed"
	case ProgramCancelled:
		return "Cancelled"
	default:
		return ""
	}
}

// ProgramPhase is one block of a structured program description.
type ProgramPhase struct {
	Name          string   `json:"name"`
	DurationWeeks *int     `json:"durationWeeks,omitempty"`
	Focus         *string  `json:"focus,omitempty"`
	WorkoutIDs    []string `json:"workoutIds,omitempty"`
}

// ProgramMetric is a tracked target inside a structured program description.
type ProgramMetric struct {
	Name   string   `json:"name"`
	Target *float64 `json:"target,omitempty"`
	Unit   *string  `json:"unit,omitempty"`
}

// ProgramStructure is the machine-readable form of a program description.
type ProgramStructure struct {
	Overview *string         `json:"overview,omitempty"`
	Phases   []ProgramPhase  `json:"phases,omitempty"`
	Metrics  []ProgramMetric `json:"metrics,omitempty"`
}

// Program assigns a plan of workouts to a client over a date window.
// StartDate and EndDate stay wire strings because the backend emits two
// formats; ParseFlexibleDate handles both.
type Program struct {
	ID                    string            `json:"id"`
	TrainerID             *string           `json:"trainerId,omitempty"`
	ClientID              string            `json:"clientId"`
	Title                 string            `json:"title"`
	DescriptionRaw        *string           `json:"descriptionRaw,omitempty"`
	DescriptionStructured *ProgramStructure `json:"descriptionStructured,omitempty"`
	StartDate             *string           `json:"startDate,omitempty"`
	EndDate               *string           `json:"endDate,omitempty"`
	WorkoutIDs            []string          `json:"workoutIds,omitempty"`
	Status                *ProgramStatus    `json:"status,omitempty"`
	CreatedAt             *time.Time        `json:"createdAt,omitempty"`
	UpdatedAt             *time.Time        `json:"updatedAt,omitempty"`
}

type programAlias Program

// UnmarshalJSON decodes a program payload, enforcing the required id,
// clientId and title fields.
func (p *Program) UnmarshalJSON(data []byte) error {
	var a programAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.ID == "" {
		return ErrEmptyProgramID
	}
	if a.ClientID == "" {
		return ErrEmptyProgramClientID
	}
	if a.Title == "" {
		return ErrEmptyProgramTitle
	}
	*p = Program(a)
	return nil
}

// Validate checks if the Program has valid data.
func (p *Program) Validate() error {
	if p.ID == "" {
		return ErrEmptyProgramID
	}
	if p.ClientID == "" {
		return ErrEmptyProgramClientID
	}
	if p.Title == "" {
		return ErrEmptyProgramTitle
	}
	return nil
}

// NewDraftProgramID returns a fresh client-side program ID, marked unsaved
// via the draft_ prefix.
func NewDraftProgramID() string {
	return "draft_" + uuid.NewString()
}

// StartTime parses the program's start date. Returns false when the field is
// absent or unparseable.
func (p Program) StartTime() (time.Time, bool) {
	if p.StartDate == nil {
		return time.Time{}, false
	}
	return ParseFlexibleDate(*p.StartDate)
}

// EndTime parses the program's end date. Returns false when the field is
// absent or unparseable.
func (p Program) EndTime() (time.Time, bool) {
	if p.EndDate == nil {
		return time.Time{}, false
	}
	return ParseFlexibleDate(*p.EndDate)
}

// IsActiveAt reports whether now falls inside the program's [start, end]
// window, inclusive at both edges. The stored status is deliberately not
// consulted: activity is a pure date-window property. Both dates must parse.
func (p Program) IsActiveAt(now time.Time) bool {
	start, okStart := p.StartTime()
	end, okEnd := p.EndTime()
	if !okStart || !okEnd {
		return false
	}
	return !now.Before(start) && !now.After(end)
}

// IsActive is IsActiveAt evaluated at the current time.
func (p Program) IsActive() bool {
	return p.IsActiveAt(time.Now())
}

// DisplayStatusAt renders the program's state for the UI. An explicit
// backend status wins; otherwise the state derives from now versus the date
// window (Upcoming / Active / Completed), falling back to "Draft" when the
// dates do not parse.
func (p Program) DisplayStatusAt(now time.Time) string {
	if p.Status != nil {
		if s := p.Status.displayString(); s != "" {
			return s
		}
	}
	start, okStart := p.StartTime()
	end, okEnd := p.EndTime()
	if !okStart || !okEnd {
		return "Draft"
	}
	switch {
	case now.Before(start):
		return "Upcoming"
	case now.After(end):
		return "Completed"
	default:
		return "Active"
	}
}

// DisplayStatus is DisplayStatusAt evaluated at the current time.
func (p Program) DisplayStatus() string {
	return p.DisplayStatusAt(time.Now())
}

// ProgressPercentageAt returns how far through the program window now is,
// clamped to [0, 1]: 0 before the start, 1 after the end, linear elapsed
// time in between. Unparseable dates yield 0.
func (p Program) ProgressPercentageAt(now time.Time) float64 {
	start, okStart := p.StartTime()
	end, okEnd := p.EndTime()
	if !okStart || !okEnd {
		return 0.0
	}
	if !now.After(start) {
		return 0.0
	}
	if !now.Before(end) {
		return 1.0
	}
	total := end.Sub(start)
	if total <= 0 {
		return 1.0
	}
	return float64(now.Sub(start)) / float64(total)
}

// ProgressPercentage is ProgressPercentageAt evaluated at the current time.
func (p Program) ProgressPercentage() float64 {
	return p.ProgressPercentageAt(time.Now())
}

// CanScheduleWorkoutAt reports whether a workout may be scheduled on the
// given date: never earlier than today (day granularity), and inside the
// program window when the program's dates parse.
func (p Program) CanScheduleWorkoutAt(date, now time.Time) bool {
	day := startOfDay(date)
	if day.Before(startOfDay(now)) {
		return false
	}
	start, okStart := p.StartTime()
	end, okEnd := p.EndTime()
	if okStart && day.Before(startOfDay(start)) {
		return false
	}
	if okEnd && day.After(startOfDay(end)) {
		return false
	}
	return true
}

// CanScheduleWorkout is CanScheduleWorkoutAt evaluated at the current time.
func (p Program) CanScheduleWorkout(date time.Time) bool {
	return p.CanScheduleWorkoutAt(date, time.Now())
}
