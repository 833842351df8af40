package domain

import "errors"

// Invariant violations detected before any write. Callers match these with
// errors.Is and render the message to the user.
var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryInUse      = errors.New("category is referenced by activities, habits or tasks")
	ErrDuplicateCategory  = errors.New("a category with that name already exists")
	ErrInvalidPeriod      = errors.New("period must be daily, weekly or monthly")
	ErrInvalidPeriodCount = errors.New("number of periods must be between 2 and 90; for a single period, create a task instead")
	ErrInvalidDateRange   = errors.New("start date must be before end date")
	ErrDateRangeTooLong   = errors.New("date range must not exceed one year")
	ErrNegativeDuration   = errors.New("duration must not be negative")
	ErrEmptyName          = errors.New("name must not be empty")
	ErrProgressGeneration = errors.New("no progress windows could be generated")
)
