package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"child-immunization-tracker/internal/domain/catalog"
	"child-immunization-tracker/internal/domain/schedule"

	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the vaccine catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCatalog(cmd.OutOrStdout(), catalog.Default())
		},
	}
}

func scheduleCmd() *cobra.Command {
	var dob, today string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the schedule generated for a date of birth",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := schedule.Today(time.Now(), time.Local)
			if strings.TrimSpace(today) != "" {
				d, err := schedule.ParseDate(today)
				if err != nil {
					return fmt.Errorf("--today: %w", err)
				}
				ref = d
			}

			events, err := schedule.GenerateFromString(catalog.Default(), dob)
			if err != nil {
				return fmt.Errorf("--dob: %w", err)
			}
			return printSchedule(cmd.OutOrStdout(), events, ref)
		},
	}

	cmd.Flags().StringVar(&dob, "dob", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&today, "today", "", "reference date for statuses (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("dob")
	return cmd
}

func printCatalog(out io.Writer, c catalog.Catalog) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VACCINE\tOFFSET DAYS\tMIN GAP DAYS\tINFO")
	for _, v := range c {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", v.Name, v.OffsetDays, v.MinGapDays, v.Info)
	}
	return tw.Flush()
}

func printSchedule(out io.Writer, events []schedule.Event, today time.Time) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VACCINE\tDUE DATE\tSTATUS")
	for _, ce := range schedule.ClassifyAll(events, today) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", ce.Name, schedule.FormatDate(ce.DueDate), ce.Display)
	}
	return tw.Flush()
}
