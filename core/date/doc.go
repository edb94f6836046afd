// Package date provides Date, a calendar value stored as a fixed-width
// 14-digit timestamp string (YYYYMMDDHHmmss).
//
// External systems exchange dates in this 14-digit form, so the string is the
// canonical representation: getters extract fixed-offset substrings and field
// setters rewrite them in place. Calendar-correct operations (interval
// arithmetic, weekday, ISO week, formatting, differences) convert the string to
// a time.Time in the date's location first.
//
// # Field writes
//
// Out-of-range field writes are silently ignored for that field only:
//
//	d := date.New("20130131120000")
//	d.SetMonth(13).SetDay(15) // month unchanged, day applied
//
// SetField reports the rejection as an error for callers that need to know.
//
// # Month arithmetic
//
// Whole-month shifts clamp the day of month down to the last day of the target
// month:
//
//	d := date.New("20130131120000")
//	_ = d.SetNextMonth() // 20130228120000
//
// Quarter, half-year and year shifts pin the day to 1 while stepping and
// restore the original day afterwards.
//
// # Conversion
//
// The zero Date holds no timestamp; any conversion on it fails with
// ErrInvalidTimestampFormat.
package date
