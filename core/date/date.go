package date

import (
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"support-kit/core/logger"
	"support-kit/core/utils"

	"go.uber.org/zap"
)

// Results of Compare.
const (
	CompareGreaterThan = 1
	CompareEquals      = 0
	CompareLesserThan  = -1
)

const (
	// Layout is the time layout of the 14-digit timestamp.
	Layout = "20060102150405"
	// Width is the number of digits in a timestamp.
	Width = 14

	zeroTimestamp = "00000000000000"
)

var (
	// ErrInvalidTimestampFormat is returned when the internal timestamp cannot be
	// converted to a time.Time.
	ErrInvalidTimestampFormat = errors.New("invalid timestamp format")
	// ErrFieldRejected is returned by SetField when a component write is refused.
	ErrFieldRejected = errors.New("field value rejected")
)

var defaultLocation atomic.Pointer[time.Location]

// DefaultLocation returns the location new dates are created in.
func DefaultLocation() *time.Location {
	if loc := defaultLocation.Load(); loc != nil {
		return loc
	}
	return time.Local
}

// SetDefaultLocation changes the location new dates are created in.
// A nil location restores time.Local.
func SetDefaultLocation(loc *time.Location) {
	defaultLocation.Store(loc)
}

// Date is a point in time held as a 14-digit YYYYMMDDHHmmss string.
type Date struct {
	ts  string
	loc *time.Location
}

// Option configures a Date at construction.
type Option func(*Date)

// WithLocation sets the location used to convert the date.
func WithLocation(loc *time.Location) Option {
	return func(d *Date) {
		d.loc = loc
	}
}

// New creates a Date from value.
//
// nil and "" yield the current time, 0 and "0" the all-zero timestamp, a
// 14-digit integer or string is used verbatim, any other integer or numeric
// string is taken as Unix seconds, and a Date or time.Time is copied.
// Unsupported types leave the zero Date, as do epochs past the year 9999
// such as millisecond timestamps; String then returns "".
func New(value any, opts ...Option) *Date {
	d := &Date{}
	for _, opt := range opts {
		opt(d)
	}

	switch v := value.(type) {
	case nil:
		d.SetUnix(time.Now().Unix())
	case *Date:
		if v == nil {
			d.SetUnix(time.Now().Unix())
			break
		}
		d.copyFrom(v)
	case Date:
		d.copyFrom(&v)
	case time.Time:
		_ = d.setTime(v)
	case string, []byte:
		d.setRaw(utils.ToString(v))
	default:
		if utils.IsInteger(v) {
			d.setRaw(utils.ToString(v))
		}
	}
	return d
}

// Now returns the current time as a Date.
func Now(opts ...Option) *Date {
	return New(nil, opts...)
}

// FromTime returns t as a Date.
func FromTime(t time.Time, opts ...Option) *Date {
	return New(t, opts...)
}

// ForBeginOfDay returns today at 00:00:00.
func ForBeginOfDay(opts ...Option) *Date {
	return Now(opts...).SetBeginningOfDay()
}

// ForEndOfDay returns today at 23:59:59.
func ForEndOfDay(opts ...Option) *Date {
	return Now(opts...).SetEndOfDay()
}

// CurrentTimestamp returns the current time as a 14-digit integer.
func CurrentTimestamp() int64 {
	n, _ := strconv.ParseInt(Now().ts, 10, 64)
	return n
}

// IsDateValue reports whether value can be taken as a timestamp: any integer,
// or a string of exactly 14 decimal digits.
func IsDateValue(value any) bool {
	if value == nil {
		return false
	}
	if utils.IsInteger(value) {
		return true
	}
	s, ok := value.(string)
	return ok && isDigits(s)
}

func isDigits(s string) bool {
	if len(s) != Width {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (d *Date) copyFrom(other *Date) {
	d.ts = other.ts
	if d.loc == nil {
		d.loc = other.loc
	}
}

func (d *Date) setRaw(s string) {
	switch {
	case s == "":
		d.SetUnix(time.Now().Unix())
	case s == "0":
		d.ts = zeroTimestamp
	case isDigits(s):
		d.ts = s
	default:
		sec, _ := utils.ToInt64(s)
		d.SetUnix(sec)
	}
}

// setTime renders t in the date's location. Times outside the four-digit
// year range are refused.
func (d *Date) setTime(t time.Time) error {
	s := t.In(d.Location()).Format(Layout)
	if !isDigits(s) {
		return fmt.Errorf("%w: %s does not fit %d digits", ErrInvalidTimestampFormat, t, Width)
	}
	d.ts = s
	return nil
}

// Location returns the location the date is converted in.
func (d *Date) Location() *time.Location {
	if d.loc == nil {
		return DefaultLocation()
	}
	return d.loc
}

// Clone returns an independent copy of d.
func (d *Date) Clone() *Date {
	c := *d
	return &c
}

// String returns the 14-digit timestamp.
func (d Date) String() string {
	return d.ts
}

// LongTimestamp returns the 14-digit timestamp.
func (d *Date) LongTimestamp() string {
	return d.ts
}

// SetLongTimestamp replaces the timestamp when value is a 14-digit date value.
// Anything else leaves the date unchanged.
func (d *Date) SetLongTimestamp(value any) *Date {
	if !IsDateValue(value) {
		return d
	}
	if s := utils.ToString(value); isDigits(s) {
		d.ts = s
	}
	return d
}

// SetUnix sets the date from Unix seconds, rendered in the date's location.
func (d *Date) SetUnix(sec int64) *Date {
	if err := d.setTime(time.Unix(sec, 0)); err != nil {
		logger.Named("date").Debug("Epoch write rejected", zap.Int64("seconds", sec), zap.Error(err))
	}
	return d
}

// Field identifies a component of the timestamp.
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
)

type fieldSpec struct {
	name   string
	offset int
	width  int
	min    int
	max    int
}

var fieldSpecs = [...]fieldSpec{
	FieldYear:   {"year", 0, 4, 0, 9999},
	FieldMonth:  {"month", 4, 2, 1, 12},
	FieldDay:    {"day", 6, 2, 1, 31},
	FieldHour:   {"hour", 8, 2, 0, 23},
	FieldMinute: {"minute", 10, 2, 0, 59},
	FieldSecond: {"second", 12, 2, 0, 59},
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldSpecs) {
		return "field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldSpecs[f].name
}

// write replaces one fixed-width component. force skips the range check for
// time components but the value must still fit two digits.
func (d *Date) write(f Field, value int, force bool) error {
	if f < 0 || int(f) >= len(fieldSpecs) {
		return fmt.Errorf("%w: unknown %s", ErrFieldRejected, f)
	}
	spec := fieldSpecs[f]
	if !isDigits(d.ts) {
		return fmt.Errorf("%w: %s on %q: %w", ErrFieldRejected, spec.name, d.ts, ErrInvalidTimestampFormat)
	}

	if f == FieldYear && value >= 0 && value < 100 {
		// 5 -> 2005, 25 -> 2025
		value += 2000
	}

	lo, hi := spec.min, spec.max
	if force && f >= FieldHour {
		lo, hi = 0, 99
	}
	if value < lo || value > hi {
		return fmt.Errorf("%w: %s %d outside [%d, %d]", ErrFieldRejected, spec.name, value, lo, hi)
	}

	text := fmt.Sprintf("%0*d", spec.width, value)
	d.ts = d.ts[:spec.offset] + text + d.ts[spec.offset+spec.width:]
	return nil
}

func (d *Date) apply(f Field, value int, force bool) *Date {
	if err := d.write(f, value, force); err != nil {
		logger.Named("date").Debug("Field write rejected",
			zap.Stringer("field", f),
			zap.Int("value", value),
			zap.Error(err),
		)
	}
	return d
}

// SetField writes one component and reports whether it was applied.
// The error wraps ErrFieldRejected when the value is refused.
func (d *Date) SetField(f Field, value int) error {
	return d.write(f, value, false)
}

// SetYear swaps the year part. One and two digit years are read as 20xx.
func (d *Date) SetYear(year int) *Date { return d.apply(FieldYear, year, false) }

// SetMonth swaps the month part (1-12).
func (d *Date) SetMonth(month int) *Date { return d.apply(FieldMonth, month, false) }

// SetDay swaps the day part (1-31). The day is not checked against the month.
func (d *Date) SetDay(day int) *Date { return d.apply(FieldDay, day, false) }

// SetHour swaps the hour part (0-23).
func (d *Date) SetHour(hour int) *Date { return d.apply(FieldHour, hour, false) }

// SetMinute swaps the minute part (0-59).
func (d *Date) SetMinute(minute int) *Date { return d.apply(FieldMinute, minute, false) }

// SetSecond swaps the second part (0-59).
func (d *Date) SetSecond(second int) *Date { return d.apply(FieldSecond, second, false) }

// ForceHour swaps the hour part without the 0-23 check.
func (d *Date) ForceHour(hour int) *Date { return d.apply(FieldHour, hour, true) }

// ForceMinute swaps the minute part without the 0-59 check.
func (d *Date) ForceMinute(minute int) *Date { return d.apply(FieldMinute, minute, true) }

// ForceSecond swaps the second part without the 0-59 check.
func (d *Date) ForceSecond(second int) *Date { return d.apply(FieldSecond, second, true) }

// SetEndOfDay sets the time to 23:59:59.
func (d *Date) SetEndOfDay() *Date {
	return d.SetHour(23).SetMinute(59).SetSecond(59)
}

// SetBeginningOfDay sets the time to 00:00:00.
func (d *Date) SetBeginningOfDay() *Date {
	return d.SetHour(0).SetMinute(0).SetSecond(0)
}

// WithDate returns a copy with the date part replaced.
func (d *Date) WithDate(year, month, day int) *Date {
	return d.Clone().SetYear(year).SetMonth(month).SetDay(day)
}

// WithTime returns a copy with the time part replaced.
func (d *Date) WithTime(hour, minute, second int) *Date {
	return d.Clone().SetHour(hour).SetMinute(minute).SetSecond(second)
}

func (d *Date) component(f Field) int {
	if !isDigits(d.ts) {
		return 0
	}
	spec := fieldSpecs[f]
	n, _ := strconv.Atoi(d.ts[spec.offset : spec.offset+spec.width])
	return n
}

// Year returns the year part.
func (d *Date) Year() int { return d.component(FieldYear) }

// Month returns the month part.
func (d *Date) Month() int { return d.component(FieldMonth) }

// Day returns the day part.
func (d *Date) Day() int { return d.component(FieldDay) }

// Hour returns the hour part.
func (d *Date) Hour() int { return d.component(FieldHour) }

// Minute returns the minute part.
func (d *Date) Minute() int { return d.component(FieldMinute) }

// Second returns the second part.
func (d *Date) Second() int { return d.component(FieldSecond) }

// IsSameDay reports whether both dates fall on the same calendar day.
func (d *Date) IsSameDay(other *Date) bool {
	if !isDigits(d.ts) || !isDigits(other.ts) {
		return false
	}
	return d.ts[:8] == other.ts[:8]
}
