package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"commonhub/internal/booking"

	"github.com/spf13/cobra"
)

type slotsOptions struct {
	configPath   string
	bookingsPath string
	date         string
}

func NewSlotsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &slotsOptions{}

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Show the slots of a date and how many seats remain",
		Long: `Generate the slots a facility config offers on one date.

With --bookings, existing bookings are counted against each slot's capacity
the same way the service does.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlots(rootOpts, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "facility config YAML")
	cmd.Flags().StringVar(&opts.bookingsPath, "bookings", "", "existing bookings YAML")
	cmd.Flags().StringVarP(&opts.date, "date", "d", "", "date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func runSlots(rootOpts *RootOptions, opts *slotsOptions, w io.Writer) error {
	cfg, err := LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if !cfg.IsBookable() {
		return booking.ErrWalkInFacility
	}

	date, err := booking.ParseDate(opts.date, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid --date %q, use YYYY-MM-DD", opts.date)
	}

	var existing []booking.Booking
	if opts.bookingsPath != "" {
		if existing, err = LoadBookings(opts.bookingsPath, cfg, time.UTC); err != nil {
			return err
		}
	}

	day := booking.DayAvailability{
		Date:  date.Format(booking.DateLayout),
		Slots: booking.ResolveDay(cfg, existing, date),
	}
	if len(day.Slots) == 0 {
		day.Message = booking.NoSlotsMessage
	}

	f := &OutputFormatter{Format: rootOpts.Format, Writer: w}
	return f.Render(day, func(w io.Writer) error {
		fmt.Fprintf(w, "%s (%s)\n", day.Date, date.Weekday())
		if day.Message != "" {
			fmt.Fprintln(w, day.Message)
			return nil
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SLOT\tBOOKED\tAVAILABLE")
		for _, s := range day.Slots {
			state := fmt.Sprintf("%d/%d", s.Available, s.Capacity)
			if s.IsFull {
				state += " full"
			}
			fmt.Fprintf(tw, "%s\t%d\t%s\n", s.TimeSlot, s.Booked, state)
		}
		return tw.Flush()
	})
}
