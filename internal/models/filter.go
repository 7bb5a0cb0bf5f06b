package models

import (
	"fmt"

	"github.com/yolku/staffing-backend/pkg/validator"
)

// PositionFilter carries the raw, caller-supplied discovery filters.
// Every field is independently optional; an empty string means no
// constraint on that dimension.
type PositionFilter struct {
	State      string `form:"state"`
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	Profession string `form:"profession"`
}

// PositionQuery is a validated, normalized filter ready for execution.
type PositionQuery struct {
	State      string // "" or a normalized 2-letter code
	Profession string // "" or a canonical profession code
	StartDate  *CalendarDate
	EndDate    *CalendarDate
}

// Normalize validates each present filter field and builds the query.
// Validation failures are ValidationError values and happen before any
// store access.
func (f *PositionFilter) Normalize() (*PositionQuery, error) {
	q := &PositionQuery{}

	if f.State != "" {
		state, err := validator.NormalizeStateCode(f.State)
		if err != nil {
			return nil, &ValidationError{Message: err.Error()}
		}
		q.State = state
	}

	if f.Profession != "" {
		if !IsValidProfession(f.Profession) {
			return nil, &ValidationError{
				Message: fmt.Sprintf("unknown profession code %q", f.Profession),
			}
		}
		q.Profession = f.Profession
	}

	if f.StartDate != "" {
		start, err := ParseCalendarDate(f.StartDate)
		if err != nil {
			return nil, &ValidationError{Message: err.Error()}
		}
		q.StartDate = &start
	}

	if f.EndDate != "" {
		end, err := ParseCalendarDate(f.EndDate)
		if err != nil {
			return nil, &ValidationError{Message: err.Error()}
		}
		q.EndDate = &end
	}

	if q.StartDate != nil && q.EndDate != nil && q.StartDate.After(*q.EndDate) {
		return nil, &ValidationError{
			Message: fmt.Sprintf("inverted date range: start %s is after end %s",
				q.StartDate, q.EndDate),
		}
	}

	return q, nil
}

// ValidationError represents a rejected caller input. It maps to a 400
// response and is never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrInvalidInput creates a validation error.
func ErrInvalidInput(message string) error {
	return &ValidationError{Message: message}
}
