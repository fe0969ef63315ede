package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDistance(t *testing.T) {
	km := func(v float64) *float64 { return &v }

	tests := []struct {
		name string
		km   *float64
		want string
	}{
		{name: "unknown", km: nil, want: "-"},
		{name: "same spot", km: km(0), want: "0 m"},
		{name: "walking distance", km: km(0.4567), want: "457 m"},
		{name: "rounds up to a kilometre", km: km(0.9996), want: "1000 m"},
		{name: "kilometres", km: km(1.26), want: "1.3 km"},
		{name: "edge of the search radius", km: km(25), want: "25.0 km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDistance(tt.km))
		})
	}
}

func TestFormatRemaining(t *testing.T) {
	now := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     string
	}{
		{name: "already past", deadline: now.Add(-time.Minute), want: "expired"},
		{name: "under a minute left", deadline: now.Add(30 * time.Second), want: "expired"},
		{name: "minutes", deadline: now.Add(45*time.Minute + 59*time.Second), want: "45m"},
		{name: "hours pad minutes", deadline: now.Add(2*time.Hour + 5*time.Minute), want: "2h05m"},
		{name: "next morning", deadline: now.Add(14 * time.Hour), want: "14h00m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRemaining(tt.deadline, now))
		})
	}
}
