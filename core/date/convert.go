package date

import (
	"cmp"
	"fmt"
	"time"
)

const atomLayout = "2006-01-02T15:04:05-07:00"

// ToTime converts the timestamp to a time.Time in the date's location.
// Components beyond their calendar range roll over (February 31 is March 3).
func (d *Date) ToTime() (time.Time, error) {
	if !isDigits(d.ts) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestampFormat, d.ts)
	}
	return time.Date(
		d.Year(),
		time.Month(d.Month()),
		d.Day(),
		d.Hour(),
		d.Minute(),
		d.Second(),
		0,
		d.Location(),
	), nil
}

// Timestamp returns the Unix seconds of the date.
func (d *Date) Timestamp() (int64, error) {
	t, err := d.ToTime()
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// DayOfWeek returns the weekday, 0 for Sunday through 6 for Saturday.
func (d *Date) DayOfWeek() (int, error) {
	t, err := d.ToTime()
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}

// WeekOfYear returns the ISO 8601 week number.
func (d *Date) WeekOfYear() (int, error) {
	t, err := d.ToTime()
	if err != nil {
		return 0, err
	}
	_, week := t.ISOWeek()
	return week, nil
}

// RFC3339 returns the date in ATOM form, e.g. 2024-04-11T00:00:00+02:00.
func (d *Date) RFC3339() (string, error) {
	t, err := d.ToTime()
	if err != nil {
		return "", err
	}
	return t.Format(atomLayout), nil
}

// Format renders the date with a PHP-style layout such as "Y-m-d H:i:s".
func (d *Date) Format(layout string) (string, error) {
	t, err := d.ToTime()
	if err != nil {
		return "", err
	}
	return FormatTime(t, layout), nil
}

// Diff returns the interval from d to target. Unless absolute is set the
// interval is inverted when target lies before d.
func (d *Date) Diff(target time.Time, absolute bool) (Interval, error) {
	t, err := d.ToTime()
	if err != nil {
		return Interval{}, err
	}
	return diff(t, target, absolute), nil
}

// Compare orders two dates by their Unix seconds and returns
// CompareLesserThan, CompareEquals or CompareGreaterThan.
func (d *Date) Compare(other *Date) (int, error) {
	a, err := d.Timestamp()
	if err != nil {
		return 0, err
	}
	b, err := other.Timestamp()
	if err != nil {
		return 0, err
	}
	return cmp.Compare(a, b), nil
}

// IsGreater reports whether d lies after other.
func (d *Date) IsGreater(other *Date) bool {
	c, err := d.Compare(other)
	return err == nil && c == CompareGreaterThan
}

// IsLower reports whether d lies before other.
func (d *Date) IsLower(other *Date) bool {
	c, err := d.Compare(other)
	return err == nil && c == CompareLesserThan
}

// IsEquals reports whether both dates denote the same second.
func (d *Date) IsEquals(other *Date) bool {
	c, err := d.Compare(other)
	return err == nil && c == CompareEquals
}
