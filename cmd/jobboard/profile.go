package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/jobboard/internal/observability"
	"github.com/jonathan/jobboard/internal/types"
	"github.com/spf13/cobra"
)

func newProfileCmd(a *app) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the candidate profile",
	}
	profileCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the saved profile",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				p, ok, err := a.profiles.Get(cmd.Context())
				if err != nil {
					return err
				}
				if !ok {
					p = nil
				}
				observability.NewPrinter(cmd.OutOrStdout()).PrintProfile(p)
				return nil
			},
		},
		newProfileSaveCmd(a),
		&cobra.Command{
			Use:   "clear",
			Short: "Delete the saved profile",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := a.profiles.Clear(cmd.Context()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Profile cleared")
				return nil
			},
		},
	)
	return profileCmd
}

type profileFlags struct {
	file             string
	name             string
	email            string
	phone            string
	resume           string
	objective        string
	education        []string
	experience       []string
	projects         []string
	extracurriculars []string
	skills           []string
}

func newProfileSaveCmd(a *app) *cobra.Command {
	var f profileFlags
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or update the profile",
		Long: "Starts from --file (a profile JSON document) or the saved profile, then applies any field flags. " +
			"Section flags replace the whole section and may be repeated.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var p types.CandidateProfile
			if f.file != "" {
				data, err := os.ReadFile(f.file)
				if err != nil {
					return fmt.Errorf("failed to read profile file: %w", err)
				}
				if err := json.Unmarshal(data, &p); err != nil {
					return fmt.Errorf("failed to parse profile file: %w", err)
				}
			} else {
				current, ok, err := a.profiles.Get(cmd.Context())
				if err != nil {
					return err
				}
				if ok {
					p = *current
				}
			}

			flags := cmd.Flags()
			set := func(name string, dst *string, v string) {
				if flags.Changed(name) {
					*dst = v
				}
			}
			set("name", &p.Name, f.name)
			set("email", &p.Email, f.email)
			set("phone", &p.Phone, f.phone)
			set("objective", &p.CareerObjective, f.objective)
			if flags.Changed("resume") {
				resume, err := inlineUpload(f.resume)
				if err != nil {
					return err
				}
				p.Resume = resume
			}

			setEntries := func(name string, dst *types.Entries, v []string) {
				if !flags.Changed(name) {
					return
				}
				entries := make(types.Entries, 0, len(v))
				for _, s := range v {
					entries = append(entries, types.TextEntry(s))
				}
				*dst = entries
			}
			setEntries("education", &p.Education, f.education)
			setEntries("experience", &p.Experience, f.experience)
			setEntries("project", &p.Projects, f.projects)
			setEntries("extracurricular", &p.Extracurriculars, f.extracurriculars)
			setEntries("skill", &p.Skills, f.skills)

			if err := a.profiles.Save(cmd.Context(), p); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Profile saved for %s\n", p.Email)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.file, "file", "f", "", "Profile JSON document to start from")
	fs.StringVar(&f.name, "name", "", "Full name")
	fs.StringVar(&f.email, "email", "", "Email address")
	fs.StringVar(&f.phone, "phone", "", "Phone number")
	fs.StringVar(&f.resume, "resume", "", "Resume (file, URL or data URL)")
	fs.StringVar(&f.objective, "objective", "", "Career objective")
	fs.StringArrayVar(&f.education, "education", nil, "Education entry")
	fs.StringArrayVar(&f.experience, "experience", nil, "Experience entry")
	fs.StringArrayVar(&f.projects, "project", nil, "Project entry")
	fs.StringArrayVar(&f.extracurriculars, "extracurricular", nil, "Extracurricular entry")
	fs.StringArrayVar(&f.skills, "skill", nil, "Skill")
	return cmd
}
