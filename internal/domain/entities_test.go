package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramMonth(t *testing.T) {
	tests := []struct {
		date  string
		month int
		ok    bool
	}{
		{"2025-03-14", 2, true},
		{"2025-04-01T09:30:00.000+00:00", 3, true},
		{"2025-12-31T23:00:00Z", 11, true},
		// the stored offset decides the month, not the local zone
		{"2025-03-31T23:00:00-05:00", 2, true},
		{"2025-04-01T01:00:00+09:00", 3, true},
		{"2025-01-05T10:00:00", 0, true},
		{"", 0, false},
		{"next tuesday", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			month, ok := Program{Date: tt.date}.Month()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.month, month)
			}
		})
	}
}

func TestWrapMonth(t *testing.T) {
	assert.Equal(t, 11, WrapMonth(-1))
	assert.Equal(t, 0, WrapMonth(12))
	assert.Equal(t, 1, WrapMonth(25))
	assert.Equal(t, 10, WrapMonth(-14))
	assert.Equal(t, "December", MonthName(-1))
}

func TestNormalizeLiked(t *testing.T) {
	assert.Equal(t, 0, NormalizeLiked(0))
	assert.Equal(t, 1, NormalizeLiked(1))
	assert.Equal(t, 1, NormalizeLiked(7))
	assert.Equal(t, 1, NormalizeLiked(-1))
}

func TestProgramDisplayDate(t *testing.T) {
	assert.Equal(t, "Mar 14, 2025", Program{Date: "2025-03-14"}.DisplayDate())
	assert.Equal(t, "soon", Program{Date: "soon"}.DisplayDate())
}
