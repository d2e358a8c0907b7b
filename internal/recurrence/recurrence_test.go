package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerate_NilRule_SingleDate(t *testing.T) {
	dates, err := Generate(time.Date(2025, 1, 6, 15, 30, 0, 0, time.UTC), nil)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2025, 1, 6)}, dates)
}

func TestGenerate_WeeklyCount(t *testing.T) {
	rule := &domain.RecurrenceRule{Frequency: domain.FrequencyWeekly, Count: 4}

	dates, err := Generate(date(2025, 1, 6), rule)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		date(2025, 1, 6),
		date(2025, 1, 13),
		date(2025, 1, 20),
		date(2025, 1, 27),
	}, dates)
}

func TestGenerate_WeeklyByWeekday(t *testing.T) {
	rule := &domain.RecurrenceRule{
		Frequency: domain.FrequencyWeekly,
		Count:     6,
		Weekdays:  []time.Weekday{time.Monday, time.Wednesday},
	}

	dates, err := Generate(date(2025, 1, 6), rule)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		date(2025, 1, 6),
		date(2025, 1, 8),
		date(2025, 1, 13),
		date(2025, 1, 15),
		date(2025, 1, 20),
		date(2025, 1, 22),
	}, dates)
}

func TestGenerate_DailyUntil(t *testing.T) {
	until := date(2025, 1, 10)
	rule := &domain.RecurrenceRule{Frequency: domain.FrequencyDaily, Until: &until}

	dates, err := Generate(date(2025, 1, 6), rule)

	require.NoError(t, err)
	require.Len(t, dates, 5)
	assert.Equal(t, date(2025, 1, 6), dates[0])
	assert.Equal(t, date(2025, 1, 10), dates[4])
}

func TestGenerate_CountWinsOverUntil(t *testing.T) {
	until := date(2026, 1, 1)
	rule := &domain.RecurrenceRule{Frequency: domain.FrequencyDaily, Count: 2, Until: &until}

	dates, err := Generate(date(2025, 1, 6), rule)

	require.NoError(t, err)
	assert.Len(t, dates, 2)
}

func TestGenerate_DefaultCount(t *testing.T) {
	rule := &domain.RecurrenceRule{Frequency: domain.FrequencyMonthly}

	dates, err := Generate(date(2025, 1, 15), rule)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		date(2025, 1, 15),
		date(2025, 2, 15),
		date(2025, 3, 15),
		date(2025, 4, 15),
	}, dates)
}

func TestGenerate_CapsAtMaxOccurrences(t *testing.T) {
	rule := &domain.RecurrenceRule{Frequency: domain.FrequencyDaily, Count: 500}

	dates, err := Generate(date(2025, 1, 1), rule)

	require.NoError(t, err)
	assert.Len(t, dates, MaxOccurrences)
}

func TestGenerate_UntilFarFuture_CapsAtMaxOccurrences(t *testing.T) {
	until := date(2035, 1, 1)
	rule := &domain.RecurrenceRule{Frequency: domain.FrequencyDaily, Until: &until}

	dates, err := Generate(date(2025, 1, 1), rule)

	require.NoError(t, err)
	assert.Len(t, dates, MaxOccurrences)
}

func TestGenerate_Interval(t *testing.T) {
	rule := &domain.RecurrenceRule{Frequency: domain.FrequencyWeekly, Interval: 2, Count: 3}

	dates, err := Generate(date(2025, 1, 6), rule)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		date(2025, 1, 6),
		date(2025, 1, 20),
		date(2025, 2, 3),
	}, dates)
}

func TestGenerate_Deterministic(t *testing.T) {
	rule := &domain.RecurrenceRule{Frequency: domain.FrequencyWeekly, Count: 10}

	first, err := Generate(date(2025, 3, 3), rule)
	require.NoError(t, err)

	second, err := Generate(date(2025, 3, 3), rule)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_UnknownFrequency(t *testing.T) {
	rule := &domain.RecurrenceRule{Frequency: "hourly"}

	_, err := Generate(date(2025, 1, 6), rule)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGenerate_NegativeInterval(t *testing.T) {
	rule := &domain.RecurrenceRule{Frequency: domain.FrequencyDaily, Interval: -1}

	_, err := Generate(date(2025, 1, 6), rule)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGenerate_NegativeCount(t *testing.T) {
	rule := &domain.RecurrenceRule{Frequency: domain.FrequencyDaily, Count: -3}

	_, err := Generate(date(2025, 1, 6), rule)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGenerate_WeekdaysRequireWeekly(t *testing.T) {
	rule := &domain.RecurrenceRule{
		Frequency: domain.FrequencyDaily,
		Count:     3,
		Weekdays:  []time.Weekday{time.Monday},
	}

	_, err := Generate(date(2025, 1, 6), rule)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExpandSlots_TemplateWideAndExactDate(t *testing.T) {
	dates := []time.Time{date(2025, 1, 6), date(2025, 1, 13), date(2025, 1, 20)}
	exact := date(2025, 1, 13)

	templates := []domain.SlotTemplate{
		{ID: "t1", EventID: "e1", Name: "General", Kind: domain.SlotKindRegular, Capacity: 10},
		{ID: "t2", EventID: "e1", Name: "Special", Kind: domain.SlotKindRegular, Capacity: 5, OccurrenceDate: &exact},
	}

	var n int
	instances := ExpandSlots(dates, templates, func() string { n++; return string(rune('a' + n)) })

	require.Len(t, instances, 4) // 3 template-wide + 1 exact-date

	var exactCount int
	for _, inst := range instances {
		if inst.SlotTemplateID == "t2" {
			exactCount++
			assert.Equal(t, exact, inst.OccurrenceDate)
		}
	}
	assert.Equal(t, 1, exactCount)
}

func TestExpandSlots_NoDates(t *testing.T) {
	templates := []domain.SlotTemplate{{ID: "t1", EventID: "e1", Capacity: 3}}

	instances := ExpandSlots(nil, templates, func() string { return "x" })

	assert.Empty(t, instances)
}

func TestToDate(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2025, 6, 1, 23, 45, 0, 0, loc)

	assert.Equal(t, date(2025, 6, 1), ToDate(in))
}
