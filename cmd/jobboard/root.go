package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jobboard",
		Short: "Local job board",
		Long: "jobboard posts jobs, takes applications and tracks applicant status in a local store. " +
			"The store is a single-user file; running two copies against the same store can lose writes.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd)
		},
	}

	f := rootCmd.PersistentFlags()
	f.StringVarP(&a.opts.configPath, "config", "c", "", "Path to config file (JSON or YAML)")
	f.StringVar(&a.opts.storeBackend, "store-backend", "", "Store backend: memory, file or sqlite")
	f.StringVar(&a.opts.storePath, "store-path", "", "Path to the store file")
	f.StringVar(&a.opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn or error")
	f.StringVar(&a.opts.logFormat, "log-format", "", "Log format: text or json")
	f.StringVar(&a.opts.metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file on exit")
	f.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(
		newJobCmd(a),
		newListingsCmd(a),
		newApplyCmd(a),
		newApplicationsCmd(a),
		newStatusCmd(a),
		newSyncCmd(a),
		newProfileCmd(a),
		newApplicantCmd(a),
	)
	return rootCmd
}
