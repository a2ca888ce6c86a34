package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	t.Run("No Zero Padding", func(t *testing.T) {
		instant := time.Date(2025, 8, 5, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, "5_8_2025", DateKey(instant))
	})

	t.Run("Double Digit Day And Month", func(t *testing.T) {
		instant := time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, "31_12_2025", DateKey(instant))
	})
}

func TestTimeLabel(t *testing.T) {
	cases := []struct {
		hour, minute int
		expected     string
	}{
		{10, 0, "10:00 am"},
		{10, 30, "10:30 am"},
		{11, 30, "11:30 am"},
		{12, 0, "12:00 pm"},
		{13, 0, "1:00 pm"},
		{20, 30, "8:30 pm"},
		{9, 5, "9:05 am"},
	}
	for _, tc := range cases {
		instant := time.Date(2025, 8, 5, tc.hour, tc.minute, 0, 0, time.UTC)
		assert.Equal(t, tc.expected, TimeLabel(instant))
	}
}

func TestGenerate(t *testing.T) {
	t.Run("Seven Days Returned", func(t *testing.T) {
		now := time.Date(2025, 8, 5, 8, 0, 0, 0, time.UTC)
		days := Generate(now, nil)
		assert.Len(t, days, 7)
	})

	t.Run("Full Day Before Opening", func(t *testing.T) {
		now := time.Date(2025, 8, 5, 8, 0, 0, 0, time.UTC)
		days := Generate(now, nil)

		// 10:00 through 20:30 inclusive, 30-minute steps.
		assert.Len(t, days[0].Times, 22)
		assert.Equal(t, "10:00 am", days[0].Times[0])
		assert.Equal(t, "8:30 pm", days[0].Times[len(days[0].Times)-1])
	})

	t.Run("Day Zero Starts At Next Boundary", func(t *testing.T) {
		now := time.Date(2025, 8, 5, 13, 45, 0, 0, time.UTC)
		days := Generate(now, nil)
		assert.Equal(t, "2:00 pm", days[0].Times[0])
	})

	t.Run("Exact Boundary Is Kept", func(t *testing.T) {
		now := time.Date(2025, 8, 5, 13, 30, 0, 0, time.UTC)
		days := Generate(now, nil)
		assert.Equal(t, "1:30 pm", days[0].Times[0])
	})

	t.Run("Day Zero Empty After Closing", func(t *testing.T) {
		now := time.Date(2025, 8, 5, 21, 10, 0, 0, time.UTC)
		days := Generate(now, nil)
		assert.Empty(t, days[0].Times)

		// The next day is unaffected.
		assert.Equal(t, "10:00 am", days[1].Times[0])
	})

	t.Run("Later Days Start At Opening Hour", func(t *testing.T) {
		now := time.Date(2025, 8, 5, 15, 0, 0, 0, time.UTC)
		days := Generate(now, nil)
		for i := 1; i < len(days); i++ {
			assert.Equal(t, "10:00 am", days[i].Times[0])
		}
	})

	t.Run("Booked Slots Excluded", func(t *testing.T) {
		now := time.Date(2025, 8, 5, 8, 0, 0, 0, time.UTC)
		booked := map[string][]string{
			"5_8_2025": {"10:00 am", "3:30 pm"},
		}
		days := Generate(now, booked)

		assert.Equal(t, "10:30 am", days[0].Times[0])
		assert.NotContains(t, days[0].Times, "10:00 am")
		assert.NotContains(t, days[0].Times, "3:30 pm")
		assert.Len(t, days[0].Times, 20)
	})

	t.Run("Booked Slots Only Affect Their Day", func(t *testing.T) {
		now := time.Date(2025, 8, 5, 8, 0, 0, 0, time.UTC)
		booked := map[string][]string{
			"5_8_2025": {"10:00 am"},
		}
		days := Generate(now, booked)
		assert.Contains(t, days[1].Times, "10:00 am")
	})

	t.Run("Date Keys Advance Daily", func(t *testing.T) {
		now := time.Date(2025, 8, 30, 8, 0, 0, 0, time.UTC)
		days := Generate(now, nil)
		assert.Equal(t, "30_8_2025", days[0].DateKey)
		assert.Equal(t, "31_8_2025", days[1].DateKey)
		assert.Equal(t, "1_9_2025", days[2].DateKey)
	})

	t.Run("Chronological Order", func(t *testing.T) {
		now := time.Date(2025, 8, 5, 8, 0, 0, 0, time.UTC)
		days := Generate(now, nil)
		parsed := func(label string) time.Time {
			parsedTime, err := time.Parse("3:04 pm", label)
			assert.NoError(t, err)
			return parsedTime
		}
		for _, day := range days {
			for i := 1; i < len(day.Times); i++ {
				assert.True(t, parsed(day.Times[i-1]).Before(parsed(day.Times[i])))
			}
		}
	})
}
