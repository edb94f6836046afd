package date_test

import (
	"testing"
	"time"

	"support-kit/core/date"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shiftCase struct {
	from string
	want string
}

func runShifts(t *testing.T, shift func(*date.Date) error, cases []shiftCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.from, func(t *testing.T) {
			d := utc(tc.from)
			require.NoError(t, shift(d))
			assert.Equal(t, tc.want, d.String())
		})
	}
}

func TestSetNextMonth(t *testing.T) {
	runShifts(t, (*date.Date).SetNextMonth, []shiftCase{
		{"20130101000000", "20130201000000"},
		{"20130115120000", "20130215120000"},
		{"20130131120000", "20130228120000"},
		{"20130228120000", "20130328120000"},
		{"20130331120000", "20130430120000"},
		{"20240131120000", "20240229120000"},
		{"20131231235959", "20140131235959"},
	})
}

func TestSetPreviousMonth(t *testing.T) {
	runShifts(t, (*date.Date).SetPreviousMonth, []shiftCase{
		{"20130101120000", "20121201120000"},
		{"20130430120000", "20130330120000"},
		{"20130331120000", "20130228120000"},
		{"20130831120000", "20130731120000"},
		{"20240330080000", "20240229080000"},
	})
}

func TestMonthRoundTrip(t *testing.T) {
	tests := []struct {
		from string
		want string
	}{
		{"20130115120000", "20130115120000"},
		{"20130331120000", "20130330120000"},
		{"20130131120000", "20130128120000"},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			d := utc(tt.from)
			require.NoError(t, d.SetNextMonth())
			require.NoError(t, d.SetPreviousMonth())
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestSetPreviousQuarter(t *testing.T) {
	runShifts(t, (*date.Date).SetPreviousQuarter, []shiftCase{
		{"20130101120000", "20121001120000"},
		{"20130430120000", "20130130120000"},
		{"20130331120000", "20121231120000"},
		{"20130831120000", "20130531120000"},
	})
}

func TestSetNextQuarter(t *testing.T) {
	runShifts(t, (*date.Date).SetNextQuarter, []shiftCase{
		{"20130101120000", "20130401120000"},
		{"20131115120000", "20140215120000"},
	})
}

func TestSetPreviousHalfYear(t *testing.T) {
	runShifts(t, (*date.Date).SetPreviousHalfYear, []shiftCase{
		{"20130101120000", "20120701120000"},
		{"20130430120000", "20121030120000"},
		{"20130331120000", "20120931120000"},
		{"20130831120000", "20130231120000"},
	})
}

func TestSetNextHalfYear(t *testing.T) {
	runShifts(t, (*date.Date).SetNextHalfYear, []shiftCase{
		{"20130101120000", "20130701120000"},
		{"20130815120000", "20140215120000"},
	})
}

func TestSetNextYear(t *testing.T) {
	runShifts(t, (*date.Date).SetNextYear, []shiftCase{
		{"20130115120000", "20140115120000"},
		{"20150531120000", "20160531120000"},
	})
}

func TestSetPreviousYear(t *testing.T) {
	runShifts(t, (*date.Date).SetPreviousYear, []shiftCase{
		{"20130122120000", "20120122120000"},
		{"20150531120000", "20140531120000"},
	})
}

func TestSetNextWeek(t *testing.T) {
	runShifts(t, (*date.Date).SetNextWeek, []shiftCase{
		{"20130115120000", "20130122120000"},
		{"20131228120000", "20140104120000"},
	})
}

func TestSetPreviousWeek(t *testing.T) {
	runShifts(t, (*date.Date).SetPreviousWeek, []shiftCase{
		{"20130122120000", "20130115120000"},
	})
}

func TestDayShifts(t *testing.T) {
	runShifts(t, (*date.Date).SetNextDay, []shiftCase{
		{"20130228120000", "20130301120000"},
		{"20131231120000", "20140101120000"},
	})
	runShifts(t, (*date.Date).SetPreviousDay, []shiftCase{
		{"20130301120000", "20130228120000"},
		{"20140101000000", "20131231000000"},
	})
}

func TestSecondShifts(t *testing.T) {
	runShifts(t, (*date.Date).SetNextSecond, []shiftCase{
		{"20131231235959", "20140101000000"},
	})
	runShifts(t, (*date.Date).SetPreviousSecond, []shiftCase{
		{"20140101000000", "20131231235959"},
	})
}

func TestTimezoneShifts(t *testing.T) {
	loc := berlin(t)

	d := date.New("20141026000000", date.WithLocation(loc))
	require.NoError(t, d.SetNextDay())
	assert.Equal(t, "20141027000000", d.String())

	d = date.New("20141027000000", date.WithLocation(loc))
	require.NoError(t, d.SetPreviousDay())
	assert.Equal(t, "20141026000000", d.String())
}

func TestMonthShiftOutOfRange(t *testing.T) {
	d := utc("00000115120000")
	err := d.SetPreviousMonth()
	assert.ErrorIs(t, err, date.ErrFieldRejected)
	assert.Equal(t, "00000115120000", d.String())

	d = utc("99991215120000")
	assert.Error(t, d.SetNextYear())
	assert.Equal(t, "99991215120000", d.String())
}

func TestWithCombinators(t *testing.T) {
	d := utc("20130131120000")

	next, err := d.WithNextDay()
	require.NoError(t, err)
	assert.Equal(t, "20130201120000", next.String())

	prev, err := d.WithPreviousDay()
	require.NoError(t, err)
	assert.Equal(t, "20130130120000", prev.String())

	nextMonth, err := d.WithNextMonth()
	require.NoError(t, err)
	assert.Equal(t, "20130228120000", nextMonth.String())

	prevMonth, err := d.WithPreviousMonth()
	require.NoError(t, err)
	assert.Equal(t, "20121231120000", prevMonth.String())

	nextYear, err := d.WithNextYear()
	require.NoError(t, err)
	assert.Equal(t, "20140131120000", nextYear.String())

	prevYear, err := d.WithPreviousYear()
	require.NoError(t, err)
	assert.Equal(t, "20120131120000", prevYear.String())

	assert.Equal(t, "20130131120000", d.String())

	var zero date.Date
	got, err := zero.WithNextDay()
	assert.Nil(t, got)
	assert.ErrorIs(t, err, date.ErrInvalidTimestampFormat)
}

func TestAddAndSub(t *testing.T) {
	d := utc("20130131120000")

	added, err := d.Add(date.Interval{Months: 1})
	require.NoError(t, err)
	assert.Equal(t, "20130303120000", added.String())

	added, err = d.Add(date.Interval{Days: 1, Hours: 13})
	require.NoError(t, err)
	assert.Equal(t, "20130202010000", added.String())

	subbed, err := d.Sub(date.Interval{Years: 1, Seconds: 1})
	require.NoError(t, err)
	assert.Equal(t, "20120131115959", subbed.String())

	assert.Equal(t, "20130131120000", d.String())

	require.NoError(t, d.SubtractInterval(date.Interval{Days: 31}))
	assert.Equal(t, "20121231120000", d.String())
}

func TestAddOutsideYearRange(t *testing.T) {
	d := utc("99991231235959")
	err := d.AddInterval(date.Interval{Seconds: 1})
	assert.ErrorIs(t, err, date.ErrInvalidTimestampFormat)
	assert.Equal(t, "99991231235959", d.String())
}

func TestShiftKeepsLocation(t *testing.T) {
	d := utc("20130131120000")
	c, err := d.WithNextDay()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, c.Location())
}
