package game

import "time"

// Period selects a trailing window for pulse aggregation.
type Period string

const (
	PeriodAll     Period = "all"
	Period1Minute Period = "1minute"
	Period1Hour   Period = "1hour"
	Period24Hours Period = "24hours"
	Period1Month  Period = "1month"

	// PeriodUnknown is what unrecognized client input parses to. Its
	// window is empty, so it aggregates nothing rather than erroring.
	PeriodUnknown Period = "unknown"
)

// ParsePeriod maps a raw client string onto a valid period.
func ParsePeriod(raw string) Period {
	switch p := Period(raw); p {
	case PeriodAll, Period1Minute, Period1Hour, Period24Hours, Period1Month:
		return p
	default:
		return PeriodUnknown
	}
}

// cutoff returns the earliest timestamp included in the period. The zero
// time means no filter; now means an empty window.
func (p Period) cutoff(now time.Time) time.Time {
	switch p {
	case Period1Minute:
		return now.Add(-1 * time.Minute)
	case Period1Hour:
		return now.Add(-1 * time.Hour)
	case Period24Hours:
		return now.Add(-24 * time.Hour)
	case Period1Month:
		return now.Add(-30 * 24 * time.Hour)
	case PeriodAll:
		return time.Time{}
	default:
		return now
	}
}

// PeriodData is the aggregate pulse view for one trailing window.
type PeriodData struct {
	Countries map[string]int `json:"countries"`
	Global    int            `json:"global"`
	Period    Period         `json:"period"`
}

func (PeriodData) EventName() string { return "pulsesByPeriod" }
