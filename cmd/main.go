// Package main provides the CLI entrypoint for tldregex.
// It loads configuration, initializes logging and runs the generator, writing the
// generated declaration to stdout and every diagnostic to stderr.
package main

import (
	"context"
	"os"
	"tldregex/internal/config"
	"tldregex/internal/generator"
	"tldregex/pkg/logger"
	"tldregex/pkg/serrors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by the commands once the root command parsed its flags.
type app struct {
	configPath string
	cfg        *config.Config
}

// options returns generator options from config, overridden by any flag the user set.
func (a *app) options(cmd *cobra.Command) generator.Options {
	opts := generator.Options{
		VarName:     a.cfg.Generator.VarName,
		Width:       a.cfg.Generator.Width,
		Format:      a.cfg.Generator.Format,
		Package:     a.cfg.Generator.Package,
		ASCII:       a.cfg.Generator.ASCII,
		RejectEmpty: a.cfg.Generator.RejectEmpty,
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		opts.VarName, _ = flags.GetString("name")
	}
	if flags.Changed("width") {
		opts.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("format") {
		opts.Format, _ = flags.GetString("format")
	}
	if flags.Changed("package") {
		opts.Package, _ = flags.GetString("package")
	}
	if flags.Changed("ascii") {
		opts.ASCII, _ = flags.GetBool("ascii")
	}
	if flags.Changed("reject-empty") {
		opts.RejectEmpty, _ = flags.GetBool("reject-empty")
	}

	return opts
}

// newGenerator builds a generator for cmd, logging the failure when options are invalid.
func (a *app) newGenerator(ctx context.Context, cmd *cobra.Command) (*generator.Generator, error) {
	g, err := generator.New(a.options(cmd))
	if err != nil {
		logger.Error(ctx, "invalid generator options", zap.Error(err), zap.Any("kind", serrors.KindOf(err)))

		return nil, err
	}

	return g, nil
}

// rootCommand constructs the root command, which generates the declaration for
// the TLD list given as its only argument.
func rootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tldregex <tld-list>",
		Short:         "Generates a regex declaration matching any TLD of a list as a suffix",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.Setup(cfg.Environment)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logger.WithFields(cmd.Context(), zap.String("path", args[0]))

			g, err := a.newGenerator(ctx, cmd)
			if err != nil {
				return err
			}

			out, err := g.Generate(ctx, args[0])
			if err != nil {
				logger.Error(ctx, "could not generate TLD regex", zap.Error(err), zap.Any("kind", serrors.KindOf(err)))

				return err
			}

			_, err = cmd.OutOrStdout().Write([]byte(out))

			return err
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config File Path")

	generatorFlags(cmd)

	return cmd
}

// generatorFlags registers the flags overriding generator configuration. Their
// defaults are only shown in help; unset flags leave config values alone.
func generatorFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", generator.DefaultVarName, "Variable name of the generated regex")
	cmd.Flags().Int("width", generator.DefaultWidth, "Maximum escaped width of a string literal chunk")
	cmd.Flags().String("format", "js", "Output language (js or go)")
	cmd.Flags().String("package", "tlds", "Package clause of go output")
	cmd.Flags().Bool("ascii", false, "Escape non-ASCII characters in js output")
	cmd.Flags().Bool("reject-empty", false, "Fail when the list has no entries instead of emitting \\.()$")
}

// newCLI returns the root command with its subcommands registered.
func newCLI() *cobra.Command {
	a := &app{}
	rootCmd := rootCommand(a)
	rootCmd.AddCommand(matchCommand(a))

	return rootCmd
}

// main sets up the root Cobra command and executes the CLI.
func main() {
	rootCmd := newCLI()

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	err := rootCmd.ExecuteContext(ctx)
	logger.Sync(ctx)
	if err != nil {
		// errors already logged by the command carry a kind; the rest come from cobra
		if serrors.KindOf(err) == nil {
			rootCmd.PrintErrln("Error:", err)
		}
		os.Exit(1) //nolint: gocritic
	}
}
