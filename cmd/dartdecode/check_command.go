package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"dartdecode/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the configured paths and external programs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config: %s\n", path)

			results := preflight.RunAll(cfg)
			rows := make([][]string, 0, len(results))
			for _, result := range results {
				status := "OK"
				if !result.Passed {
					status = "FAIL"
				}
				rows = append(rows, []string{result.Name, status, result.Detail})
			}
			fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows))

			if !preflight.Passed(results) {
				return errors.New("preflight checks failed; see the FAIL rows above")
			}
			fmt.Fprintln(out, renderStatusLine(statusOK, "Ready to decode", shouldColorize(out)))
			return nil
		},
	}
}
