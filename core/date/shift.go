package date

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// AddInterval moves the date forward by iv.
func (d *Date) AddInterval(iv Interval) error {
	t, err := d.ToTime()
	if err != nil {
		return err
	}
	return d.setTime(iv.AddTo(t))
}

// SubtractInterval moves the date backwards by iv.
func (d *Date) SubtractInterval(iv Interval) error {
	return d.AddInterval(iv.Negate())
}

// SetNextDay moves to the next day. Month and year boundaries roll over.
func (d *Date) SetNextDay() error {
	return d.AddInterval(Interval{Days: 1})
}

// SetPreviousDay moves to the previous day.
func (d *Date) SetPreviousDay() error {
	return d.SubtractInterval(Interval{Days: 1})
}

// SetNextWeek moves seven days forward.
func (d *Date) SetNextWeek() error {
	return d.AddInterval(Interval{Days: 7})
}

// SetPreviousWeek moves seven days back.
func (d *Date) SetPreviousWeek() error {
	return d.SubtractInterval(Interval{Days: 7})
}

// SetNextSecond moves one second forward in absolute time.
func (d *Date) SetNextSecond() error {
	return d.shiftUnix(1)
}

// SetPreviousSecond moves one second back in absolute time.
func (d *Date) SetPreviousSecond() error {
	return d.shiftUnix(-1)
}

func (d *Date) shiftUnix(delta int64) error {
	t, err := d.ToTime()
	if err != nil {
		return err
	}
	return d.setTime(t.Add(time.Duration(delta) * time.Second))
}

// SetNextMonth moves one month forward. When the target month is shorter
// than the current day of month the day is clamped to its last day, so
// January 31 becomes February 28 (29 in leap years).
func (d *Date) SetNextMonth() error {
	return d.shiftMonths(1)
}

// SetPreviousMonth moves one month back, clamping the day like SetNextMonth.
func (d *Date) SetPreviousMonth() error {
	return d.shiftMonths(-1)
}

// SetNextQuarter moves three months forward, keeping the day of month.
func (d *Date) SetNextQuarter() error {
	return d.shiftPinned(1, 3)
}

// SetPreviousQuarter moves three months back, keeping the day of month.
func (d *Date) SetPreviousQuarter() error {
	return d.shiftPinned(-1, 3)
}

// SetNextHalfYear moves six months forward, keeping the day of month.
func (d *Date) SetNextHalfYear() error {
	return d.shiftPinned(1, 6)
}

// SetPreviousHalfYear moves six months back, keeping the day of month.
func (d *Date) SetPreviousHalfYear() error {
	return d.shiftPinned(-1, 6)
}

// SetNextYear moves twelve months forward, keeping the day of month.
func (d *Date) SetNextYear() error {
	return d.shiftPinned(1, 12)
}

// SetPreviousYear moves twelve months back, keeping the day of month.
func (d *Date) SetPreviousYear() error {
	return d.shiftPinned(-1, 12)
}

// shiftMonths rewrites the year, month and day digits. The time of day is
// left untouched.
func (d *Date) shiftMonths(n int) error {
	if !isDigits(d.ts) {
		return fmt.Errorf("%w: %q", ErrInvalidTimestampFormat, d.ts)
	}

	months := d.Year()*12 + d.Month() - 1 + n
	if months < 0 || months/12 > 9999 {
		return fmt.Errorf("%w: month shift by %d leaves the year range", ErrFieldRejected, n)
	}
	year, month := months/12, months%12+1

	day := d.Day()
	if last := int(datetime.DaysInMonth(year, datetime.Month(month))); day > last {
		day = last
	}

	d.ts = fmt.Sprintf("%04d%02d%02d", year, month, day) + d.ts[8:]
	return nil
}

// shiftPinned steps count months in direction step with the day pinned to 1,
// then writes the original day back. The restored day is not clamped.
func (d *Date) shiftPinned(step, count int) error {
	c := d.Clone()
	day := c.Day()
	c.SetDay(1)
	for i := 0; i < count; i++ {
		if err := c.shiftMonths(step); err != nil {
			return err
		}
	}
	c.SetDay(day)
	d.ts = c.ts
	return nil
}

// WithNextDay returns a copy moved to the next day.
func (d *Date) WithNextDay() (*Date, error) { return d.with((*Date).SetNextDay) }

// WithPreviousDay returns a copy moved to the previous day.
func (d *Date) WithPreviousDay() (*Date, error) { return d.with((*Date).SetPreviousDay) }

// WithNextMonth returns a copy moved one month forward.
func (d *Date) WithNextMonth() (*Date, error) { return d.with((*Date).SetNextMonth) }

// WithPreviousMonth returns a copy moved one month back.
func (d *Date) WithPreviousMonth() (*Date, error) { return d.with((*Date).SetPreviousMonth) }

// WithNextYear returns a copy moved one year forward.
func (d *Date) WithNextYear() (*Date, error) { return d.with((*Date).SetNextYear) }

// WithPreviousYear returns a copy moved one year back.
func (d *Date) WithPreviousYear() (*Date, error) { return d.with((*Date).SetPreviousYear) }

// Add returns a copy moved forward by iv.
func (d *Date) Add(iv Interval) (*Date, error) {
	return d.with(func(c *Date) error { return c.AddInterval(iv) })
}

// Sub returns a copy moved back by iv.
func (d *Date) Sub(iv Interval) (*Date, error) {
	return d.with(func(c *Date) error { return c.SubtractInterval(iv) })
}

func (d *Date) with(mutate func(*Date) error) (*Date, error) {
	c := d.Clone()
	if err := mutate(c); err != nil {
		return nil, err
	}
	return c, nil
}
