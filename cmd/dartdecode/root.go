package main

import (
	"github.com/spf13/cobra"

	"dartdecode/internal/config"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags
	ctx := newCommandContext(&flags)

	var decode decodeFlags
	rootCmd := &cobra.Command{
		Use:           "dartdecode",
		Short:         "Decode DART trace logs with SysTraceParser",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipLogging(cmd) {
				return nil
			}
			_, err := ctx.ensureLogger()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, ctx, decode)
		},
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&flags.config, "config", "c", config.FileName, "Decoder configuration file (JSON)")
	persistent.StringVar(&flags.settings, "settings", "", "Tool settings file (TOML, default ~/.config/dartdecode/settings.toml)")
	persistent.StringVar(&flags.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	persistent.StringVar(&flags.logFormat, "log-format", "", "Log format override (console, json)")

	bindDecodeFlags(rootCmd, &decode)

	rootCmd.AddCommand(newDecodeCommand(ctx))
	rootCmd.AddCommand(newResolveCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
