package date

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// ErrInvalidInterval is returned by ParseInterval for unreadable input.
var ErrInvalidInterval = errors.New("invalid interval")

// Interval is a calendar duration applied component by component.
// Components overflow the way the calendar does: January 31 plus one month is
// March 3 (or 2 in leap years).
type Interval struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
	// Invert applies the interval backwards.
	Invert bool
	// TotalDays is the whole number of days between two dates. Only Diff sets it.
	TotalDays int
}

// Negate returns the interval applied in the opposite direction.
func (iv Interval) Negate() Interval {
	iv.Invert = !iv.Invert
	return iv
}

// IsZero reports whether the interval moves nothing.
func (iv Interval) IsZero() bool {
	return iv.Years == 0 && iv.Months == 0 && iv.Days == 0 &&
		iv.Hours == 0 && iv.Minutes == 0 && iv.Seconds == 0
}

// AddTo applies the interval to t on the wall clock of t's location.
func (iv Interval) AddTo(t time.Time) time.Time {
	sign := 1
	if iv.Invert {
		sign = -1
	}
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(
		y+sign*iv.Years,
		mo+time.Month(sign*iv.Months),
		d+sign*iv.Days,
		h+sign*iv.Hours,
		mi+sign*iv.Minutes,
		s+sign*iv.Seconds,
		t.Nanosecond(),
		t.Location(),
	)
}

func (iv Interval) String() string {
	var parts []string
	add := func(n int, unit string) {
		if n == 0 {
			return
		}
		if n != 1 && n != -1 {
			unit += "s"
		}
		parts = append(parts, strconv.Itoa(n)+" "+unit)
	}
	add(iv.Years, "year")
	add(iv.Months, "month")
	add(iv.Days, "day")
	add(iv.Hours, "hour")
	add(iv.Minutes, "minute")
	add(iv.Seconds, "second")
	if len(parts) == 0 {
		return "0 seconds"
	}
	out := strings.Join(parts, " ")
	if iv.Invert {
		out = "-(" + out + ")"
	}
	return out
}

// ParseInterval reads relative formats such as "1 day", "7 days",
// "+2 weeks" or "1 year -3 months".
func ParseInterval(s string) (Interval, error) {
	var iv Interval
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 || len(fields)%2 != 0 {
		return iv, fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}
	for i := 0; i < len(fields); i += 2 {
		n, err := strconv.Atoi(strings.TrimPrefix(fields[i], "+"))
		if err != nil {
			return Interval{}, fmt.Errorf("%w: %q: %w", ErrInvalidInterval, s, err)
		}
		switch strings.TrimSuffix(fields[i+1], "s") {
		case "sec", "second":
			iv.Seconds += n
		case "min", "minute":
			iv.Minutes += n
		case "hour":
			iv.Hours += n
		case "day":
			iv.Days += n
		case "week":
			iv.Days += 7 * n
		case "fortnight":
			iv.Days += 14 * n
		case "month":
			iv.Months += n
		case "year":
			iv.Years += n
		default:
			return Interval{}, fmt.Errorf("%w: unknown unit %q", ErrInvalidInterval, fields[i+1])
		}
	}
	return iv, nil
}

// diff returns the interval from a to b on the wall clock of a's location.
// Day borrowing uses the length of a's month.
func diff(a, b time.Time, absolute bool) Interval {
	b = b.In(a.Location())
	invert := false
	if b.Before(a) {
		a, b = b, a
		invert = true
	}

	y1, m1, d1 := a.Date()
	h1, i1, s1 := a.Clock()
	y2, m2, d2 := b.Date()
	h2, i2, s2 := b.Clock()

	iv := Interval{
		Years:   y2 - y1,
		Months:  int(m2 - m1),
		Days:    d2 - d1,
		Hours:   h2 - h1,
		Minutes: i2 - i1,
		Seconds: s2 - s1,
	}
	if iv.Seconds < 0 {
		iv.Seconds += 60
		iv.Minutes--
	}
	if iv.Minutes < 0 {
		iv.Minutes += 60
		iv.Hours--
	}
	if iv.Hours < 0 {
		iv.Hours += 24
		iv.Days--
	}
	if iv.Days < 0 {
		iv.Days += int(datetime.DaysInMonth(y1, datetime.Month(m1)))
		iv.Months--
	}
	if iv.Months < 0 {
		iv.Months += 12
		iv.Years--
	}

	wallA := time.Date(y1, m1, d1, h1, i1, s1, 0, time.UTC)
	wallB := time.Date(y2, m2, d2, h2, i2, s2, 0, time.UTC)
	iv.TotalDays = int(wallB.Sub(wallA) / (24 * time.Hour))
	iv.Invert = invert && !absolute
	return iv
}
