package leavescheme_test

import (
	"testing"
	"time"

	"go-hris-leave/internal/leavescheme"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func TestWindow_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b leavescheme.Window
		want bool
	}{
		{
			name: "closed windows apart",
			a:    leavescheme.Window{From: day("2025-01-01"), To: dayPtr("2025-03-31")},
			b:    leavescheme.Window{From: day("2025-04-01"), To: dayPtr("2025-06-30")},
			want: false,
		},
		{
			name: "shared boundary day",
			a:    leavescheme.Window{From: day("2025-01-01"), To: dayPtr("2025-04-01")},
			b:    leavescheme.Window{From: day("2025-04-01"), To: dayPtr("2025-06-30")},
			want: true,
		},
		{
			name: "open ended later start",
			a:    leavescheme.Window{From: day("2025-01-01"), To: dayPtr("2025-06-30")},
			b:    leavescheme.Window{From: day("2025-04-01")},
			want: true,
		},
		{
			name: "open ended existing blocks anything after",
			a:    leavescheme.Window{From: day("2025-01-01")},
			b:    leavescheme.Window{From: day("2030-01-01"), To: dayPtr("2030-12-31")},
			want: true,
		},
		{
			name: "open ended starting after closed window",
			a:    leavescheme.Window{From: day("2025-01-01"), To: dayPtr("2025-06-30")},
			b:    leavescheme.Window{From: day("2025-07-01")},
			want: false,
		},
		{
			name: "both open ended",
			a:    leavescheme.Window{From: day("2025-01-01")},
			b:    leavescheme.Window{From: day("2024-01-01")},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestWindow_ValidAndContains(t *testing.T) {
	assert.False(t, leavescheme.Window{From: day("2025-02-01"), To: dayPtr("2025-01-31")}.Valid())
	assert.True(t, leavescheme.Window{From: day("2025-02-01")}.Valid())

	w := leavescheme.Window{From: day("2025-01-01"), To: dayPtr("2025-06-30")}
	assert.True(t, w.Contains(day("2025-06-30")))
	assert.False(t, w.Contains(day("2025-07-01")))
	assert.False(t, w.Contains(day("2024-12-31")))
}
