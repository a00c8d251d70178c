package payroll

import (
	"errors"
	"testing"
	"time"

	"github.com/nizami-hq/nizami-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleRange(t *testing.T) {
	cycle, err := CycleRange("2024-05")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), cycle.Start)
	assert.Equal(t, time.Date(2024, 6, 9, 23, 59, 59, int(999*time.Millisecond), time.UTC), cycle.End)
}

func TestCycleRange_YearRollover(t *testing.T) {
	cycle, err := CycleRange("2024-12")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC), cycle.Start)
	assert.Equal(t, 2025, cycle.End.Year())
	assert.Equal(t, time.January, cycle.End.Month())
	assert.Equal(t, 9, cycle.End.Day())
}

func TestCycleRange_MalformedToken(t *testing.T) {
	for _, token := range []string{"", "2024", "2024-13", "05-2024", "not-a-cycle"} {
		_, err := CycleRange(token)
		require.Error(t, err, "token %q", token)

		var verrs validator.ValidationErrors
		assert.True(t, errors.As(err, &verrs), "token %q should fail validation", token)
	}
}

func TestCycleContains(t *testing.T) {
	cycle, err := CycleRange("2024-05")
	require.NoError(t, err)

	cases := []struct {
		date string
		want bool
	}{
		{"2024-05-10", true},  // first day
		{"2024-06-09", true},  // last day
		{"2024-05-09", false}, // belongs to previous cycle
		{"2024-06-10", false}, // belongs to next cycle
		{"2024-05-31", true},
		{"garbage", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, cycle.Contains(c.date), "date %s", c.date)
	}
}

func TestActiveCycleToken(t *testing.T) {
	cases := []struct {
		now  time.Time
		want string
	}{
		{time.Date(2024, 5, 9, 12, 0, 0, 0, time.UTC), "2024-04"},
		{time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), "2024-05"},
		{time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC), "2024-05"},
		{time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), "2024-12"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ActiveCycleToken(c.now))
	}
}
