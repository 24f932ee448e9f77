package date

import "fmt"

// Range is a span of days, both ends included.
type Range struct{ From, To Date }

// NewRange returns the range of the given period containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Contains reports whether day is within r.
func (r Range) Contains(day Date) bool { return !day.Before(r.From) && !day.After(r.To) }

// Period returns the calendar period r spans exactly, if any. The shortest
// matching period wins, so a single day is Daily.
func (r Range) Period() (Period, bool) {
	for _, p := range []Period{Daily, Weekly, Monthly, Quarterly, Yearly} {
		if r.From.StartOf(p) == r.From && r.From.EndOf(p) == r.To {
			return p, true
		}
	}
	return Daily, false
}

// Identifier returns a short name for r: "2025", "2025-Q3", "2025-07",
// "2025-W27" or "2025-07-01" for calendar periods, "from_to" otherwise.
func (r Range) Identifier() string {
	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
	switch p {
	case Yearly:
		return r.From.Format("2006")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (r.From.Month()-1)/3+1)
	case Monthly:
		return r.From.Format("2006-01")
	case Weekly:
		year, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	default:
		return r.From.String()
	}
}
