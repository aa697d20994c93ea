package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dartdecode/internal/logging"
	"dartdecode/internal/tokens"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var skipEmpty bool
	cmd := &cobra.Command{
		Use:   "resolve <product>",
		Short: "Print the token folder used for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}
			product := strings.TrimSpace(args[0])
			path, err := tokens.New(cfg.TokenBasePath, tokens.WithSkipEmpty(skipEmpty)).Resolve(product)
			if err != nil {
				return err
			}
			logging.NewComponentLogger(ctx.loggerValue(), "cli").Debug("token path resolved",
				logging.String("product", product),
				logging.String("token_path", path),
			)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipEmpty, "skip-empty", false, "Keep searching when a matching token folder has no files")
	return cmd
}
