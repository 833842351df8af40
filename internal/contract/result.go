package contract

import (
	"errors"
	"fmt"

	"github.com/akarlsen/cadence/internal/domain"
	"github.com/akarlsen/cadence/internal/repository"
)

// Result is the uniform success/failure envelope returned to callers of
// the service layer. Expected domain failures carry a user-facing message;
// they are never raised as errors through the outer boundary.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OK builds a successful result with a formatted message.
func OK(format string, args ...any) Result {
	return Result{Success: true, Message: fmt.Sprintf(format, args...)}
}

// expected lists the failure conditions whose messages are shown to the
// user verbatim. Anything else is an infrastructure error: the caller gets
// a generic line and the detail is logged server-side.
var expected = []error{
	domain.ErrCategoryNotFound,
	domain.ErrCategoryInUse,
	domain.ErrDuplicateCategory,
	domain.ErrInvalidPeriod,
	domain.ErrInvalidPeriodCount,
	domain.ErrInvalidDateRange,
	domain.ErrDateRangeTooLong,
	domain.ErrNegativeDuration,
	domain.ErrEmptyName,
	domain.ErrProgressGeneration,
	repository.ErrNotFound,
}

// FromError converts an error into a failure result. It reports whether
// the error was an expected domain condition; callers log unexpected ones.
func FromError(err error) (Result, bool) {
	for _, sentinel := range expected {
		if errors.Is(err, sentinel) {
			return Result{Success: false, Message: err.Error()}, true
		}
	}
	return Result{Success: false, Message: "An error occurred"}, false
}
