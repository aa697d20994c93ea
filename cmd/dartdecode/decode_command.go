package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dartdecode/internal/decoder"
	"dartdecode/internal/logging"
	"dartdecode/internal/prompt"
	"dartdecode/internal/runlock"
	"dartdecode/internal/workflow"
)

type decodeFlags struct {
	product   string
	device    string
	noViewer  bool
	skipEmpty bool
}

func bindDecodeFlags(cmd *cobra.Command, flags *decodeFlags) {
	cmd.Flags().StringVarP(&flags.product, "product", "p", "", "Product name (skips the prompt)")
	cmd.Flags().StringVarP(&flags.device, "device", "d", "", "Device type: "+decoder.PromptChoices()+" (skips the prompt)")
	cmd.Flags().BoolVar(&flags.noViewer, "no-viewer", false, "Do not open the output in Glogg")
	cmd.Flags().BoolVar(&flags.skipEmpty, "skip-empty", false, "Keep searching when a matching token folder has no files")
}

func newDecodeCommand(ctx *commandContext) *cobra.Command {
	var flags decodeFlags
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode dart.bin for a product (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, ctx, flags)
		},
	}
	bindDecodeFlags(cmd, &flags)
	return cmd
}

func runDecode(cmd *cobra.Command, ctx *commandContext, flags decodeFlags) error {
	var device decoder.DeviceType
	if flags.device != "" {
		parsed, err := decoder.ParseDeviceType(flags.device)
		if err != nil {
			return fmt.Errorf("--device: %w", err)
		}
		device = parsed
	}

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	fmt.Fprintln(out, "Hi ESRVT team...")
	fmt.Fprintln(out, "=== Dart Logs Decoder ===")

	logger := ctx.loggerValue()
	result, err := workflow.Run(cmd.Context(), workflow.Deps{
		LoadConfig: ctx.loadConfig,
		Prompter:   prompt.New(cmd.InOrStdin(), out),
		Decoder:    decoder.New(decoder.WithOutput(out, cmd.ErrOrStderr())),
		AcquireLock: func(output string) (workflow.Lock, error) {
			lock, err := runlock.Acquire("", output)
			if err != nil {
				return nil, err
			}
			return lock, nil
		},
		Reporter: newStatusReporter(out, colorize),
		Logger:   logger,
		RunID:    ctx.runID,
	}, workflow.Options{
		Product:   flags.product,
		Device:    device,
		NoViewer:  flags.noViewer,
		SkipEmpty: flags.skipEmpty,
	})
	if err != nil {
		return err
	}
	logger.Debug("decode finished",
		logging.String(logging.FieldState, result.State.String()),
		logging.Bool("viewer_failed", result.ViewerErr != nil),
	)
	return nil
}
