package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/jobboard/internal/applications"
	"github.com/jonathan/jobboard/internal/observability"
	"github.com/jonathan/jobboard/internal/types"
	"github.com/spf13/cobra"
)

// errNoProfile is returned when a candidate command needs a saved profile.
var errNoProfile = errors.New("no profile saved; run 'jobboard profile save' first")

func newApplyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <job-id>",
		Short: "Apply to a job with the saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseJobID(args[0])
			if err != nil {
				return err
			}
			candidate, ok, err := a.profiles.Get(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				return errNoProfile
			}
			job, err := a.jobs.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			submitted, err := a.apps.Submit(cmd.Context(), job, *candidate)
			var dup *applications.DuplicateApplicationError
			if errors.As(err, &dup) {
				return fmt.Errorf("you have already applied to %s", job.Title)
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Applied to %s at %s\n", submitted.Job.Title, submitted.Job.Company)
			return nil
		},
	}
}

// candidateEmail returns the --email flag value or the saved profile's email.
func (a *app) candidateEmail(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	email, err := a.profiles.Email(cmd.Context())
	if err != nil {
		return "", err
	}
	if email == "" {
		return "", errNoProfile
	}
	return email, nil
}

func newApplicationsCmd(a *app) *cobra.Command {
	appsCmd := &cobra.Command{
		Use:   "applications",
		Short: "View or withdraw submitted applications",
	}

	var listEmail string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List applications for a candidate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, err := a.candidateEmail(cmd, listEmail)
			if err != nil {
				return err
			}
			apps, err := a.apps.ListForCandidate(cmd.Context(), email)
			if err != nil {
				return err
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintApplications(apps)
			return nil
		},
	}
	listCmd.Flags().StringVar(&listEmail, "email", "", "Candidate email (defaults to the saved profile)")

	var deleteEmail string
	deleteCmd := &cobra.Command{
		Use:   "delete <job-id>",
		Short: "Withdraw the application for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseJobID(args[0])
			if err != nil {
				return err
			}
			email, err := a.candidateEmail(cmd, deleteEmail)
			if err != nil {
				return err
			}
			if err := a.apps.Delete(cmd.Context(), id, email); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted application of %s to job #%d\n", email, id)
			return nil
		},
	}
	deleteCmd.Flags().StringVar(&deleteEmail, "email", "", "Candidate email (defaults to the saved profile)")

	appsCmd.AddCommand(listCmd, deleteCmd)
	return appsCmd
}

func newStatusCmd(a *app) *cobra.Command {
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Manage applicant status (employer)",
	}
	statusCmd.AddCommand(&cobra.Command{
		Use:   "set <job-id> <email> <status>",
		Short: "Set an applicant's status: Pending, Shortlisted, Interview, Selected or Rejected",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseJobID(args[0])
			if err != nil {
				return err
			}
			status, ok := types.ParseStatus(args[2])
			if !ok {
				return &applications.InvalidStatusError{Status: args[2]}
			}
			if err := a.apps.UpdateStatus(cmd.Context(), id, args[1], status); err != nil {
				return err
			}
			// Refresh the cached applicants so the dashboard shows the new status.
			if _, _, err := a.engine.Run(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Status of %s for job #%d set to %s\n", args[1], id, status.Label())
			return nil
		},
	})
	return statusCmd
}

func newSyncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Rebuild every job's applicant list from the applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, report, err := a.engine.Run(cmd.Context())
			if err != nil {
				return err
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintSyncReport(report)
			return nil
		},
	}
}

func newApplicantCmd(a *app) *cobra.Command {
	applicantCmd := &cobra.Command{
		Use:   "applicant",
		Short: "Inspect applicants (employer)",
	}
	applicantCmd.AddCommand(&cobra.Command{
		Use:   "show <job-id> <email>",
		Short: "Show an applicant's full profile for a job",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseJobID(args[0])
			if err != nil {
				return err
			}
			email := args[1]

			var view types.ApplicantView
			job, err := a.syncedJob(cmd, id)
			if err != nil {
				return err
			}
			found := false
			for _, snap := range job.Applicants {
				if snap.Email == email {
					view, found = types.ViewFromSnapshot(job, snap), true
					break
				}
			}
			if !found {
				// Applications with incomplete candidate data are not cached.
				application, err := a.apps.Get(cmd.Context(), id, email)
				if err != nil {
					return err
				}
				view = types.ViewFromApplication(*application)
			}

			observability.NewPrinter(cmd.OutOrStdout()).PrintApplicantView(view)
			return nil
		},
	})
	return applicantCmd
}
