package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to time.Time
		want     Span
	}{
		{
			name: "months and days across year boundary",
			from: date(2024, 12, 31),
			to:   date(2025, 11, 17),
			want: Span{TotalDays: 321, Years: 0, Months: 10, Days: 17, Phrase: "10 meses, 17 días"},
		},
		{
			name: "days only",
			from: date(2025, 11, 20),
			to:   date(2025, 12, 5),
			want: Span{TotalDays: 15, Days: 15, Phrase: "15 días"},
		},
		{
			name: "same day",
			from: date(2025, 6, 1),
			to:   date(2025, 6, 1),
			want: Span{Phrase: "Menos de un día"},
		},
		{
			name: "singular units",
			from: date(2023, 1, 15),
			to:   date(2024, 2, 16),
			want: Span{TotalDays: 397, Years: 1, Months: 1, Days: 1, Phrase: "1 año, 1 mes, 1 día"},
		},
		{
			name: "plural years",
			from: date(2023, 1, 15),
			to:   date(2025, 3, 16),
			want: Span{TotalDays: 791, Years: 2, Months: 2, Days: 1, Phrase: "2 años, 2 meses, 1 día"},
		},
		{
			name: "end of month clamps",
			from: date(2025, 1, 31),
			to:   date(2025, 2, 28),
			want: Span{TotalDays: 28, Months: 1, Days: 0, Phrase: "1 mes"},
		},
		{
			name: "leap day",
			from: date(2024, 1, 29),
			to:   date(2024, 3, 1),
			want: Span{TotalDays: 32, Months: 1, Days: 1, Phrase: "1 mes, 1 día"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Between(tt.from, tt.to))
		})
	}
}

func TestBetweenNegative(t *testing.T) {
	span := Between(date(2025, 11, 17), date(2024, 12, 31))
	assert.Equal(t, -321, span.TotalDays)
	assert.Equal(t, -10, span.Months)
	assert.Equal(t, -17, span.Days)
	assert.Equal(t, "Menos de un día", span.Phrase)
}

func TestBetweenIgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2025, 11, 20, 23, 59, 0, 0, time.UTC)
	to := time.Date(2025, 12, 5, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 15, Between(from, to).TotalDays)
}

func TestElapsedAndRemaining(t *testing.T) {
	today := date(2025, 11, 17)

	elapsed := Elapsed(date(2024, 12, 31), today)
	assert.Equal(t, 321, elapsed.TotalDays)
	assert.Equal(t, "10 meses, 17 días", elapsed.Phrase)

	remaining := Remaining(date(2025, 12, 2), today)
	assert.Equal(t, 15, remaining.TotalDays)
	assert.Equal(t, "15 días", remaining.Phrase)
}

func TestClassify(t *testing.T) {
	target := date(2025, 11, 17)
	ptr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name   string
		active bool
		end    *time.Time
		want   Status
	}{
		{name: "inactive", active: false, end: ptr(date(2026, 1, 1)), want: StatusClosed},
		{name: "no validity end", active: true, end: nil, want: StatusUndetermined},
		{name: "expired yesterday", active: true, end: ptr(date(2025, 11, 16)), want: StatusExpired},
		{name: "due today", active: true, end: ptr(target), want: StatusDueToday},
		{name: "expiring tomorrow", active: true, end: ptr(date(2025, 11, 18)), want: StatusExpiring},
		{name: "expiring on window edge", active: true, end: ptr(date(2025, 12, 2)), want: StatusExpiring},
		{name: "valid past window", active: true, end: ptr(date(2025, 12, 3)), want: StatusValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.active, tt.end, target))
		})
	}
}

func TestValidAt(t *testing.T) {
	start := date(2025, 1, 1)
	end := date(2025, 6, 30)

	assert.True(t, ValidAt(&start, &end, start))
	assert.True(t, ValidAt(&start, &end, end))
	assert.True(t, ValidAt(&start, &end, date(2025, 3, 15)))
	assert.False(t, ValidAt(&start, &end, date(2024, 12, 31)))
	assert.False(t, ValidAt(&start, &end, date(2025, 7, 1)))
	assert.False(t, ValidAt(nil, &end, date(2025, 3, 15)))
}

func TestExpiringUntil(t *testing.T) {
	assert.Equal(t, date(2025, 12, 2), ExpiringUntil(time.Date(2025, 11, 17, 15, 0, 0, 0, time.UTC)))
}
