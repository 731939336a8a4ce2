package model_test

import (
	"testing"
	"time"

	"courtbook/internal/domains/reservation/model"
	"courtbook/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, value := range []string{"pending", "confirmed", "cancelled"} {
		status, err := model.ParseStatus(value)
		require.NoError(t, err)
		assert.Equal(t, value, string(status))
	}

	_, err := model.ParseStatus("approved")
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

func TestStatus_Lifecycle(t *testing.T) {
	tests := []struct {
		from   model.Status
		to     model.Status
		expect bool
	}{
		{from: model.StatusPending, to: model.StatusConfirmed, expect: true},
		{from: model.StatusPending, to: model.StatusCancelled, expect: true},
		{from: model.StatusConfirmed, to: model.StatusCancelled, expect: true},
		{from: model.StatusConfirmed, to: model.StatusPending},
		{from: model.StatusCancelled, to: model.StatusPending},
		{from: model.StatusCancelled, to: model.StatusConfirmed},
		{from: model.StatusPending, to: model.StatusPending},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.from.CanTransitionTo(tt.to))
		})
	}

	assert.True(t, model.StatusPending.IsActive())
	assert.True(t, model.StatusConfirmed.IsActive())
	assert.False(t, model.StatusCancelled.IsActive())
}

func TestDates(t *testing.T) {
	day1 := time.Date(2025, time.July, 29, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, time.July, 30, 0, 0, 0, 0, time.UTC)

	dates := model.Dates([]model.Reservation{
		{BookingDate: day2, StartTime: schedule.NewClock(10, 0)},
		{BookingDate: day1, StartTime: schedule.NewClock(10, 0)},
		{BookingDate: day2, StartTime: schedule.NewClock(11, 0)},
	})

	assert.Equal(t, []time.Time{day2, day1}, dates)
}
