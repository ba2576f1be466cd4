package cli

import (
	"fmt"
	"io"
	"time"

	"commonhub/internal/booking"

	"github.com/spf13/cobra"
)

type calendarOptions struct {
	configPath string
	from       string
	to         string
	today      string
}

func NewCalendarCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &calendarOptions{}

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "List the dates a resident may pick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalendar(rootOpts, opts, time.Now(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "facility config YAML")
	cmd.Flags().StringVar(&opts.from, "from", "", "first date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&opts.to, "to", "", "last date (YYYY-MM-DD, default from + 30 days)")
	cmd.Flags().StringVar(&opts.today, "today", "", "evaluate as if today were this date")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func parseDateFlag(name, value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := booking.ParseDate(value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q, use YYYY-MM-DD", name, value)
	}
	return d, nil
}

func runCalendar(rootOpts *RootOptions, opts *calendarOptions, now time.Time, w io.Writer) error {
	cfg, err := LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if !cfg.IsBookable() {
		return booking.ErrWalkInFacility
	}

	y, m, d := now.Date()
	today, err := parseDateFlag("today", opts.today, time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return err
	}
	from, err := parseDateFlag("from", opts.from, today)
	if err != nil {
		return err
	}
	to, err := parseDateFlag("to", opts.to, from.AddDate(0, 0, 30))
	if err != nil {
		return err
	}
	if to.Before(from) {
		return fmt.Errorf("--to must not be before --from")
	}

	view := booking.CalendarView{
		From:  from.Format(booking.DateLayout),
		To:    to.Format(booking.DateLayout),
		Dates: []string{},
	}
	for _, date := range booking.SelectableDates(cfg, from, to, today) {
		view.Dates = append(view.Dates, date.Format(booking.DateLayout))
	}

	f := &OutputFormatter{Format: rootOpts.Format, Writer: w}
	return f.Render(view, func(w io.Writer) error {
		fmt.Fprintf(w, "Bookable dates %s..%s: %d\n", view.From, view.To, len(view.Dates))
		for _, d := range view.Dates {
			date, _ := booking.ParseDate(d, time.UTC)
			fmt.Fprintf(w, "  %s %s\n", d, date.Weekday().String()[:3])
		}
		return nil
	})
}
