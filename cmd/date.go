package cmd

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"support-kit/core/date"
	"support-kit/core/utils"

	"github.com/spf13/cobra"
)

var timezoneFlag string

// shiftOps maps the operation names accepted by `date shift` to date methods.
var shiftOps = map[string]func(*date.Date) error{
	"next-day":       (*date.Date).SetNextDay,
	"prev-day":       (*date.Date).SetPreviousDay,
	"next-week":      (*date.Date).SetNextWeek,
	"prev-week":      (*date.Date).SetPreviousWeek,
	"next-month":     (*date.Date).SetNextMonth,
	"prev-month":     (*date.Date).SetPreviousMonth,
	"next-quarter":   (*date.Date).SetNextQuarter,
	"prev-quarter":   (*date.Date).SetPreviousQuarter,
	"next-half-year": (*date.Date).SetNextHalfYear,
	"prev-half-year": (*date.Date).SetPreviousHalfYear,
	"next-year":      (*date.Date).SetNextYear,
	"prev-year":      (*date.Date).SetPreviousYear,
	"next-second":    (*date.Date).SetNextSecond,
	"prev-second":    (*date.Date).SetPreviousSecond,
	"begin-of-day": func(d *date.Date) error {
		d.SetBeginningOfDay()
		return nil
	},
	"end-of-day": func(d *date.Date) error {
		d.SetEndOfDay()
		return nil
	},
}

// dateCmd represents the date command
var dateCmd = &cobra.Command{
	Use:   "date",
	Short: "Inspect and shift 14-digit timestamps",
	Long: `Works on YYYYMMDDHHmmss timestamps. Every value argument accepts a
14-digit timestamp, Unix epoch seconds or "now".`,
}

var dateShowCmd = &cobra.Command{
	Use:   "show <value>",
	Short: "Print the components of a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := parseDate(args[0])
		if err != nil {
			return err
		}

		unix, err := d.Timestamp()
		if err != nil {
			return err
		}
		weekday, _ := d.DayOfWeek()
		week, _ := d.WeekOfYear()
		rfc, _ := d.RFC3339()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Timestamp: %s\n", d.LongTimestamp())
		fmt.Fprintf(out, "Date: %04d-%02d-%02d\n", d.Year(), d.Month(), d.Day())
		fmt.Fprintf(out, "Time: %02d:%02d:%02d\n", d.Hour(), d.Minute(), d.Second())
		fmt.Fprintf(out, "Weekday: %s\n", time.Weekday(weekday))
		fmt.Fprintf(out, "ISO Week: %d\n", week)
		fmt.Fprintf(out, "RFC3339: %s\n", rfc)
		fmt.Fprintf(out, "Unix: %d\n", unix)
		return nil
	},
}

var dateShiftCmd = &cobra.Command{
	Use:   "shift <value> <op>...",
	Short: "Apply shift operations in order",
	Long:  "Operations: " + strings.Join(shiftOpNames(), ", "),
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := parseDate(args[0])
		if err != nil {
			return err
		}
		for _, name := range args[1:] {
			op, ok := shiftOps[name]
			if !ok {
				return fmt.Errorf("unknown shift operation %q", name)
			}
			if err := op(d); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), d.String())
		return nil
	},
}

var dateAddCmd = &cobra.Command{
	Use:   "add <value> <interval>",
	Short: `Add a relative interval such as "1 month 2 days"`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := parseDate(args[0])
		if err != nil {
			return err
		}
		iv, err := date.ParseInterval(args[1])
		if err != nil {
			return err
		}
		if err := d.AddInterval(iv); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), d.String())
		return nil
	},
}

var dateDiffCmd = &cobra.Command{
	Use:   "diff <from> <to>",
	Short: "Print the interval between two dates",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parseDate(args[0])
		if err != nil {
			return err
		}
		to, err := parseDate(args[1])
		if err != nil {
			return err
		}
		target, err := to.ToTime()
		if err != nil {
			return err
		}
		iv, err := from.Diff(target, false)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d days)\n", iv, iv.TotalDays)
		return nil
	},
}

var dateFormatCmd = &cobra.Command{
	Use:   "format <value> <layout>",
	Short: `Format a date with a layout such as "Y-m-d H:i:s"`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := parseDate(args[0])
		if err != nil {
			return err
		}
		s, err := d.Format(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
}

var dateValidCmd = &cobra.Command{
	Use:   "valid <value>",
	Short: "Report whether a value is a 14-digit timestamp",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), date.IsDateValue(args[0]))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dateCmd)
	dateCmd.AddCommand(dateShowCmd, dateShiftCmd, dateAddCmd, dateDiffCmd, dateFormatCmd, dateValidCmd)

	dateCmd.PersistentFlags().StringVar(&timezoneFlag, "timezone", "", "Timezone overriding DATE_TIMEZONE")
}

// parseDate accepts "now", a 14-digit timestamp or epoch seconds.
func parseDate(arg string) (*date.Date, error) {
	var opts []date.Option
	if timezoneFlag != "" {
		loc, err := date.Config{Timezone: timezoneFlag}.Location()
		if err != nil {
			return nil, err
		}
		opts = append(opts, date.WithLocation(loc))
	}

	if arg == "now" {
		return date.Now(opts...), nil
	}
	if _, ok := utils.ToInt64(arg); !ok {
		return nil, fmt.Errorf("%q is neither a timestamp nor epoch seconds", arg)
	}
	return date.New(arg, opts...), nil
}

func shiftOpNames() []string {
	names := make([]string, 0, len(shiftOps))
	for name := range shiftOps {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
