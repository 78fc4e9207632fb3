package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
		ok    bool
	}{
		{
			name:  "valid ISO date",
			value: "2025-07-14",
			want:  time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "surrounding whitespace is tolerated",
			value: " 2025-07-14 ",
			want:  time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "empty value",
			value: "",
			ok:    false,
		},
		{
			name:  "malformed value",
			value: "14/07/2025",
			ok:    false,
		},
		{
			name:  "partial date",
			value: "2025-07",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestInMonth(t *testing.T) {
	assert.True(t, InMonth("2025-07-01", 2025, time.July))
	assert.True(t, InMonth("2025-07-31", 2025, time.July))
	assert.False(t, InMonth("2025-08-01", 2025, time.July))
	assert.False(t, InMonth("2024-07-15", 2025, time.July))
	assert.False(t, InMonth("not-a-date", 2025, time.July))
	assert.False(t, InMonth("", 2025, time.July))
}
