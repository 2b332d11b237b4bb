package main

import (
	"github.com/spf13/cobra"

	"voice-task-parser/internal/voice"
)

// taskCmd implements 'voicectl task'.
func taskCmd(opts *rootOptions) *cobra.Command {
	var remote bool
	cmd := &cobra.Command{
		Use:   "task <transcript>",
		Short: "Extract a task from a spoken utterance",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now, _ := opts.referenceTime()

			v, err := opts.voice(ctx)
			if err != nil {
				return err
			}
			defer v.Close()

			in := voice.ParseTaskInput{Transcript: transcriptArg(args), Now: now}
			parse := v.UseCase.ParseTask
			if remote {
				parse = v.UseCase.ParseTaskRemote
			}

			out, err := parse(ctx, in)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), opts.output, newTaskOutput(out))
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "Use the hosted language model")
	return cmd
}

// filterCmd implements 'voicectl filter'.
func filterCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "filter <query>",
		Short: "Extract filter criteria from a spoken query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now, _ := opts.referenceTime()

			v, err := opts.voice(ctx)
			if err != nil {
				return err
			}
			defer v.Close()

			out, err := v.UseCase.ParseFilter(ctx, voice.ParseFilterInput{Transcript: transcriptArg(args), Now: now})
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), opts.output, newFilterOutput(out.Filter))
		},
	}
}
