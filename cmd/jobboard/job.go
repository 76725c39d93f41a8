package main

import (
	"fmt"

	"github.com/jonathan/jobboard/internal/jobs"
	"github.com/jonathan/jobboard/internal/observability"
	"github.com/jonathan/jobboard/internal/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newJobCmd(a *app) *cobra.Command {
	jobCmd := &cobra.Command{
		Use:   "job",
		Short: "Manage posted jobs (employer)",
	}
	jobCmd.AddCommand(
		newJobPostCmd(a),
		newJobEditCmd(a),
		newJobDeleteCmd(a),
		newJobListCmd(a),
		newJobShowCmd(a),
	)
	return jobCmd
}

// bindJobFlags registers one flag per editable job field.
func bindJobFlags(fs *pflag.FlagSet, f *types.JobFields) {
	fs.StringVar(&f.Title, "title", "", "Job title")
	fs.StringVar(&f.Company, "company", "", "Company name")
	fs.StringVar(&f.Logo, "logo", "", "Company logo (image file, URL or data URL)")
	fs.StringVar(&f.Location, "location", "", "Job location")
	fs.StringVar(&f.Salary, "salary", "", "Salary, numeric")
	fs.StringVar(&f.Type, "type", "", "Job type: full-time, part-time, internship or remote")
	fs.StringVar(&f.Description, "description", "", "Job description")
	fs.StringVar(&f.Experience, "experience", "", "Required experience")
	fs.StringVar(&f.Skills, "skills", "", "Required skills")
	fs.StringVar(&f.ValidTill, "valid-till", "", "Last day the listing is open (YYYY-MM-DD); empty means no expiry")
}

func newJobPostCmd(a *app) *cobra.Command {
	var fields types.JobFields
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a new job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logo, err := inlineUpload(fields.Logo)
			if err != nil {
				return err
			}
			fields.Logo = logo

			job, err := a.jobs.Create(cmd.Context(), fields)
			if err != nil {
				return fmt.Errorf("failed to post job: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Posted job #%d: %s\n", job.ID, job.Title)
			return nil
		},
	}
	bindJobFlags(cmd.Flags(), &fields)
	for _, name := range []string{"title", "company", "location", "salary", "type", "description"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
	return cmd
}

func newJobEditCmd(a *app) *cobra.Command {
	var fields types.JobFields
	cmd := &cobra.Command{
		Use:   "edit <job-id>",
		Short: "Edit a posted job; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseJobID(args[0])
			if err != nil {
				return err
			}
			current, err := a.jobs.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			merged := jobs.FieldsOf(current)
			flags := cmd.Flags()
			set := func(name string, dst *string, v string) {
				if flags.Changed(name) {
					*dst = v
				}
			}
			set("title", &merged.Title, fields.Title)
			set("company", &merged.Company, fields.Company)
			set("location", &merged.Location, fields.Location)
			set("salary", &merged.Salary, fields.Salary)
			set("type", &merged.Type, fields.Type)
			set("description", &merged.Description, fields.Description)
			set("experience", &merged.Experience, fields.Experience)
			set("skills", &merged.Skills, fields.Skills)
			set("valid-till", &merged.ValidTill, fields.ValidTill)
			if flags.Changed("logo") {
				if merged.Logo, err = inlineUpload(fields.Logo); err != nil {
					return err
				}
			}

			job, err := a.jobs.Update(cmd.Context(), id, merged)
			if err != nil {
				return fmt.Errorf("failed to update job: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated job #%d: %s\n", job.ID, job.Title)
			return nil
		},
	}
	bindJobFlags(cmd.Flags(), &fields)
	return cmd
}

func newJobDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <job-id>",
		Short: "Delete a posted job; its applications are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseJobID(args[0])
			if err != nil {
				return err
			}
			if err := a.jobs.Delete(cmd.Context(), id); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted job #%d\n", id)
			return nil
		},
	}
}

// newJobListCmd is the employer dashboard. Loading it recomputes every
// job's applicants.
func newJobListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List posted jobs with their applicant counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, _, err := a.engine.Run(cmd.Context())
			if err != nil {
				return err
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintEmployerJobs(list, a.now())
			return nil
		},
	}
}

func newJobShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <job-id>",
		Short: "Show a posted job and its applicants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseJobID(args[0])
			if err != nil {
				return err
			}
			job, err := a.syncedJob(cmd, id)
			if err != nil {
				return err
			}
			p := observability.NewPrinter(cmd.OutOrStdout())
			p.PrintEmployerJobs([]types.Job{*job}, a.now())
			p.PrintApplicants(job)
			return nil
		},
	}
}

// syncedJob runs a reconciliation pass and returns the job with a fresh
// applicant list.
func (a *app) syncedJob(cmd *cobra.Command, id int64) (*types.Job, error) {
	list, _, err := a.engine.Run(cmd.Context())
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, &jobs.NotFoundError{ID: id}
}
