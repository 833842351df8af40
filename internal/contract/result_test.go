package contract

import (
	"errors"
	"fmt"
	"testing"

	"github.com/akarlsen/cadence/internal/domain"
	"github.com/akarlsen/cadence/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestOK(t *testing.T) {
	res := OK("logged %d min", 45)
	assert.True(t, res.Success)
	assert.Equal(t, "logged 45 min", res.Message)
}

func TestFromError_ExpectedConditionsKeepTheirMessage(t *testing.T) {
	tests := []error{
		domain.ErrCategoryNotFound,
		domain.ErrInvalidPeriodCount,
		domain.ErrNegativeDuration,
		repository.ErrNotFound,
	}
	for _, sentinel := range tests {
		t.Run(sentinel.Error(), func(t *testing.T) {
			res, expected := FromError(sentinel)
			assert.True(t, expected)
			assert.False(t, res.Success)
			assert.Equal(t, sentinel.Error(), res.Message)
		})
	}
}

func TestFromError_WrappedSentinelStillMatches(t *testing.T) {
	err := fmt.Errorf("habit: %w", repository.ErrNotFound)
	res, expected := FromError(err)
	assert.True(t, expected)
	assert.Equal(t, "habit: not found", res.Message)
}

func TestFromError_UnexpectedErrorsGetGenericMessage(t *testing.T) {
	res, expected := FromError(errors.New("disk I/O error"))
	assert.False(t, expected)
	assert.False(t, res.Success)
	assert.Equal(t, "An error occurred", res.Message, "infrastructure detail never leaks to the user")
}
