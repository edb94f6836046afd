package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// FormatTime renders t with a PHP date() layout. Supported tokens:
//
//	d D j l N S w z      day
//	W                    ISO week
//	F m M n t            month
//	L o Y y              year
//	a A g G h H i s u v  time
//	e T P p O Z          timezone
//	c r U                full date/time
//
// A backslash emits the following character literally; any other character is
// copied as is.
func FormatTime(t time.Time, layout string) string {
	var b strings.Builder
	runes := []rune(layout)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' {
			if i+1 < len(runes) {
				i++
				b.WriteRune(runes[i])
			}
			continue
		}
		if !formatToken(&b, t, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func pad2(n int) string {
	if n < 10 && n >= 0 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func hour12(h int) int {
	if h%12 == 0 {
		return 12
	}
	return h % 12
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

func formatToken(b *strings.Builder, t time.Time, r rune) bool {
	switch r {
	case 'd':
		b.WriteString(pad2(t.Day()))
	case 'D':
		b.WriteString(t.Format("Mon"))
	case 'j':
		b.WriteString(strconv.Itoa(t.Day()))
	case 'l':
		b.WriteString(t.Weekday().String())
	case 'N':
		wd := int(t.Weekday())
		if wd == 0 {
			wd = 7
		}
		b.WriteString(strconv.Itoa(wd))
	case 'S':
		b.WriteString(ordinalSuffix(t.Day()))
	case 'w':
		b.WriteString(strconv.Itoa(int(t.Weekday())))
	case 'z':
		b.WriteString(strconv.Itoa(t.YearDay() - 1))
	case 'W':
		_, week := t.ISOWeek()
		b.WriteString(pad2(week))
	case 'F':
		b.WriteString(t.Month().String())
	case 'm':
		b.WriteString(pad2(int(t.Month())))
	case 'M':
		b.WriteString(t.Format("Jan"))
	case 'n':
		b.WriteString(strconv.Itoa(int(t.Month())))
	case 't':
		b.WriteString(strconv.Itoa(int(datetime.DaysInMonth(t.Year(), datetime.Month(t.Month())))))
	case 'L':
		if datetime.IsLeap(t.Year()) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	case 'o':
		year, _ := t.ISOWeek()
		b.WriteString(strconv.Itoa(year))
	case 'Y':
		b.WriteString(t.Format("2006"))
	case 'y':
		b.WriteString(t.Format("06"))
	case 'a':
		b.WriteString(t.Format("pm"))
	case 'A':
		b.WriteString(t.Format("PM"))
	case 'g':
		b.WriteString(strconv.Itoa(hour12(t.Hour())))
	case 'G':
		b.WriteString(strconv.Itoa(t.Hour()))
	case 'h':
		b.WriteString(pad2(hour12(t.Hour())))
	case 'H':
		b.WriteString(pad2(t.Hour()))
	case 'i':
		b.WriteString(pad2(t.Minute()))
	case 's':
		b.WriteString(pad2(t.Second()))
	case 'u':
		b.WriteString(fmt.Sprintf("%06d", t.Nanosecond()/1000))
	case 'v':
		b.WriteString(fmt.Sprintf("%03d", t.Nanosecond()/1000000))
	case 'e':
		b.WriteString(t.Location().String())
	case 'T':
		b.WriteString(t.Format("MST"))
	case 'P':
		b.WriteString(t.Format("-07:00"))
	case 'p':
		if _, offset := t.Zone(); offset == 0 {
			b.WriteByte('Z')
		} else {
			b.WriteString(t.Format("-07:00"))
		}
	case 'O':
		b.WriteString(t.Format("-0700"))
	case 'Z':
		_, offset := t.Zone()
		b.WriteString(strconv.Itoa(offset))
	case 'c':
		b.WriteString(t.Format(atomLayout))
	case 'r':
		b.WriteString(t.Format("Mon, 02 Jan 2006 15:04:05 -0700"))
	case 'U':
		b.WriteString(strconv.FormatInt(t.Unix(), 10))
	default:
		return false
	}
	return true
}
