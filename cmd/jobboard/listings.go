package main

import (
	"fmt"

	"github.com/jonathan/jobboard/internal/filter"
	"github.com/jonathan/jobboard/internal/observability"
	"github.com/spf13/cobra"
)

func newListingsCmd(a *app) *cobra.Command {
	var (
		criteria  filter.Criteria
		minSalary string
	)
	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Browse open jobs (candidate)",
		Long:  "Lists jobs that have not expired. Filters combine: every given criterion must match.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if minSalary != "" {
				v, ok := filter.ParseSalary(minSalary)
				if !ok {
					return fmt.Errorf("invalid --min-salary %q", minSalary)
				}
				criteria.MinSalary = &v
			}

			active, err := a.jobs.ListActive(cmd.Context())
			if err != nil {
				return err
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintListings(filter.Jobs(active, criteria))
			return nil
		},
	}
	cmd.Flags().StringVarP(&criteria.Search, "search", "s", "", "Keyword matched against title, description and skills")
	cmd.Flags().StringVar(&criteria.Location, "location", "", "Location substring")
	cmd.Flags().StringVar(&minSalary, "min-salary", "", "Minimum salary")
	cmd.Flags().StringVar(&criteria.JobType, "type", "", "Job type, any spelling (e.g. \"Full Time\")")
	return cmd
}
