package main

import (
	"fmt"
	"tldregex/internal/hostname"
	"tldregex/internal/pattern"
	"tldregex/pkg/logger"
	"tldregex/pkg/serrors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// matchCommand constructs the 'match' subcommand that checks host names against
// the regex built from a TLD list, the way URL detection consumes it.
func matchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <tld-list> <host-or-url>...",
		Short: "Reports which hosts end with a TLD of the list",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logger.WithFields(cmd.Context(), zap.String("path", args[0]))

			g, err := a.newGenerator(ctx, cmd)
			if err != nil {
				return err
			}

			_, entries, err := g.Pattern(ctx, args[0])
			if err != nil {
				logger.Error(ctx, "could not build TLD regex", zap.Error(err), zap.Any("kind", serrors.KindOf(err)))

				return err
			}

			re, err := pattern.Compile(entries)
			if err != nil {
				err = serrors.Wrap(serrors.ErrInternal, err, "could not compile TLD regex")
				logger.Error(ctx, "could not compile TLD regex", zap.Error(err))

				return err
			}

			for _, arg := range args[1:] {
				host, err := hostname.Extract(arg)
				if err != nil {
					logger.Warn(ctx, "could not extract host", zap.String("input", arg), zap.Error(err))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", arg, err == nil && re.MatchString(host)) //nolint: errcheck
			}

			return nil
		},
	}

	cmd.Flags().Bool("reject-empty", false, "Fail when the list has no entries")

	return cmd
}
