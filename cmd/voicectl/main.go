package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:   "voicectl",
		Short: "Parse voice transcripts into tasks and filters",
		Long:  "voicectl runs the voice task parser on a transcript without the HTTP server.",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.validate()
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: search ./config, ., /etc/app/)")
	flags.StringVarP(&opts.output, "output", "o", formatJSON, "Output format: json or yaml")
	flags.StringVar(&opts.now, "now", "", "Reference instant in RFC 3339 (default: current time)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Write service logs to stdout")

	rootCmd.AddCommand(
		taskCmd(&opts),
		filterCmd(&opts),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
