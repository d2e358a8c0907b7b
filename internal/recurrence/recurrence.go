// Package recurrence materializes a start date plus a repetition rule into
// an ordered, finite sequence of occurrence dates. Generation is pure and
// deterministic: the same inputs always yield the same sequence.
package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

const (
	// MaxOccurrences caps materialization regardless of the requested
	// count or until bound.
	MaxOccurrences = 52

	// DefaultCount applies when a rule carries neither count nor until.
	DefaultCount = 4
)

var frequencies = map[domain.Frequency]rrule.Frequency{
	domain.FrequencyDaily:   rrule.DAILY,
	domain.FrequencyWeekly:  rrule.WEEKLY,
	domain.FrequencyMonthly: rrule.MONTHLY,
	domain.FrequencyYearly:  rrule.YEARLY,
}

var weekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// Generate expands start+rule into occurrence dates at UTC midnight. A nil
// rule yields the single start date. A count bound wins over until when both
// are present; a rule with neither is bounded by DefaultCount.
func Generate(start time.Time, rule *domain.RecurrenceRule) ([]time.Time, error) {
	day := ToDate(start)

	if rule == nil {
		return []time.Time{day}, nil
	}

	freq, ok := frequencies[rule.Frequency]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported frequency %q", domain.ErrValidation, rule.Frequency)
	}

	interval := rule.Interval
	if interval == 0 {
		interval = 1
	}
	if interval < 0 {
		return nil, fmt.Errorf("%w: interval must be positive", domain.ErrValidation)
	}

	if rule.Count < 0 {
		return nil, fmt.Errorf("%w: count must be positive", domain.ErrValidation)
	}

	opt := rrule.ROption{
		Freq:     freq,
		Interval: interval,
		Dtstart:  day,
	}

	switch {
	case rule.Count > 0:
		opt.Count = min(rule.Count, MaxOccurrences)
	case rule.Until != nil:
		opt.Until = ToDate(*rule.Until)
	default:
		opt.Count = DefaultCount
	}

	if len(rule.Weekdays) > 0 {
		if rule.Frequency != domain.FrequencyWeekly {
			return nil, fmt.Errorf("%w: weekday set requires weekly frequency", domain.ErrValidation)
		}
		for _, wd := range rule.Weekdays {
			opt.Byweekday = append(opt.Byweekday, weekdays[wd])
		}
	}

	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	var dates []time.Time
	next := r.Iterator()
	for len(dates) < MaxOccurrences {
		d, ok := next()
		if !ok {
			break
		}
		dates = append(dates, d)
	}

	return dates, nil
}

// ExpandSlots builds one slot instance per (occurrence, applicable template)
// pair. Template-wide templates apply to every date; exact-date templates
// only to their own.
func ExpandSlots(dates []time.Time, templates []domain.SlotTemplate, newID func() string) []domain.SlotInstance {
	var instances []domain.SlotInstance
	for _, d := range dates {
		for _, tpl := range templates {
			if tpl.OccurrenceDate != nil && !ToDate(*tpl.OccurrenceDate).Equal(d) {
				continue
			}
			instances = append(instances, domain.SlotInstance{
				ID:             newID(),
				EventID:        tpl.EventID,
				SlotTemplateID: tpl.ID,
				OccurrenceDate: d,
				Capacity:       tpl.Capacity,
			})
		}
	}
	return instances
}

// ToDate truncates a timestamp to its calendar date at UTC midnight.
func ToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
