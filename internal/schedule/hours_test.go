package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeRangeBounds(t *testing.T) {
	testCases := []struct {
		name          string
		r             TimeRange
		expectedStart int
		expectedEnd   int
		expectErr     bool
	}{
		{
			name:          "standard range",
			r:             TimeRange{Start: "10:00", End: "18:00"},
			expectedStart: 600,
			expectedEnd:   1080,
		},
		{
			name:          "end of day boundary",
			r:             TimeRange{Start: "20:00", End: "24:00"},
			expectedStart: 1200,
			expectedEnd:   1440,
		},
		{
			name:          "non-hour minutes",
			r:             TimeRange{Start: "09:30", End: "12:15"},
			expectedStart: 570,
			expectedEnd:   735,
		},
		{
			name:      "start after end",
			r:         TimeRange{Start: "18:00", End: "10:00"},
			expectErr: true,
		},
		{
			name:      "start equals end",
			r:         TimeRange{Start: "10:00", End: "10:00"},
			expectErr: true,
		},
		{
			name:      "24:30 is invalid",
			r:         TimeRange{Start: "10:00", End: "24:30"},
			expectErr: true,
		},
		{
			name:      "missing colon",
			r:         TimeRange{Start: "1000", End: "18:00"},
			expectErr: true,
		},
		{
			name:      "non-numeric",
			r:         TimeRange{Start: "ab:00", End: "18:00"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, err := tc.r.Bounds()
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedStart, start)
				assert.Equal(t, tc.expectedEnd, end)
			}
		})
	}
}

func TestBusinessHoursValidate(t *testing.T) {
	valid := BusinessHours{
		time.Monday: {{Start: "10:00", End: "18:00"}, {Start: "20:00", End: "24:00"}},
	}
	assert.NoError(t, valid.Validate())

	invalid := BusinessHours{
		time.Tuesday: {{Start: "18:00", End: "10:00"}},
	}
	assert.Error(t, invalid.Validate())
}

func TestDefaultBusinessHours(t *testing.T) {
	hours := DefaultBusinessHours()
	assert.NoError(t, hours.Validate())
	assert.Len(t, hours[time.Monday], 2)
	assert.Empty(t, hours[time.Saturday])
	assert.Empty(t, hours[time.Sunday])
}
