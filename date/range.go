package date

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the range from 'from' to 'to'.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// Days returns the number of whole days spanned by the range.
func (r Range) Days() int { return r.To.Sub(r.From) }

// Years returns the range duration in average calendar years.
//
// It uses the 365.25 day convention so that annualized rates remain
// comparable across leap years.
func (r Range) Years() float64 { return float64(r.Days()) / 365.25 }

func (r Range) String() string { return fmt.Sprintf("%s to %s", r.From, r.To) }
