package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	cctx := newCommandContext(&configFlag)
	rootOpts := &grabOptions{}

	rootCmd := &cobra.Command{
		Use:           "transcriptgrab [url-or-id]",
		Short:         "Fetch YouTube transcripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := cctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runGrab(cctx, cmd, rootOpts, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	registerGrabFlags(rootCmd, rootOpts)

	rootCmd.AddCommand(newGrabCommand(cctx))
	rootCmd.AddCommand(newTracksCommand(cctx))
	rootCmd.AddCommand(newCacheCommand(cctx))
	rootCmd.AddCommand(newDepsCommand(cctx))
	rootCmd.AddCommand(newConfigCommand(cctx))

	return rootCmd
}
