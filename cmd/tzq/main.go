// Package main implements the tzq CLI for converting free-text time/timezone
// queries across the local zone, an explicit target, and favorite zones.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	_ "time/tzdata"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tzq-dev/tzq/pkg/clock"
	"github.com/tzq-dev/tzq/pkg/query"
	"github.com/tzq-dev/tzq/pkg/targets"
	"github.com/tzq-dev/tzq/pkg/timezone"
	"github.com/tzq-dev/tzq/pkg/tzconvert"
)

const appVersion = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "tzq <time> <timezone> [to <timezone>]",
		Short: "Convert a free-text time across timezones",
		Long: `tzq resolves a free-text time/timezone expression like "7:22pm PST to CET"
and shows the equivalent local time in your zone, the explicit target if one
was given, and every configured favorite zone.`,
		Example: `  tzq 7:22pm PST to CET
  tzq 19:30 berlin
  tzq --favorites "Tokyo, IST" 9am eastern`,
		Version:       appVersion,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, strings.Join(args, " "))
		},
	}

	cmd.Flags().String("favorites", "", "comma-separated favorite zones shown with every result")
	cmd.Flags().Bool("12h", false, "format times on a 12-hour clock")
	cmd.Flags().Bool("json", false, "emit results as JSON")
	cmd.Flags().CountP("verbose", "v", "increase log verbosity")
	return cmd
}

// initConfig layers flag > environment > config file. The config file is
// optional; only a malformed one is an error.
func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetConfigName("tzq")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "tzq"))
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	v.SetEnvPrefix("TZQ")
	v.AutomaticEnv()
	if err := v.BindPFlag("favorites", cmd.Flags().Lookup("favorites")); err != nil {
		return err
	}
	return v.BindPFlag("12h", cmd.Flags().Lookup("12h"))
}

func run(cmd *cobra.Command, v *viper.Viper, rawQuery string) error {
	verbosity, _ := cmd.Flags().GetCount("verbose")
	level := slog.LevelWarn
	if verbosity > 0 {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	clk := clock.System{}
	resolver := timezone.New(clk, logger)
	parser := query.New(resolver)
	assembler := targets.New(clk, resolver)

	var opts []tzconvert.Option
	if v.GetBool("12h") {
		opts = append(opts, tzconvert.WithTwelveHour())
	}
	converter := tzconvert.New(clk, opts...)

	favorites := v.GetString("favorites")
	if bad := assembler.InvalidFavorites(favorites); len(bad) > 0 {
		color.New(color.FgYellow).Fprintf(os.Stderr,
			"warning: unknown favorite timezones: %s\n", strings.Join(bad, ", "))
	}

	pq := parser.Parse(rawQuery)
	if pq.Err != "" {
		return errors.New(pq.Err)
	}
	logger.Debug("parsed query",
		"time", pq.TimeText, "source", pq.SourceZone, "target", pq.TargetZone)

	results, err := convertAll(pq, favorites, resolver, assembler, converter)
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return renderJSON(cmd.OutOrStdout(), rawQuery, pq, results)
	}
	renderTable(cmd.OutOrStdout(), results)
	return nil
}

// convertAll runs the source time through every assembled target zone.
func convertAll(pq query.ParsedQuery, favorites string, resolver *timezone.Resolver,
	assembler *targets.Assembler, converter *tzconvert.Converter,
) ([]tzconvert.ConvertedTime, error) {
	list := assembler.Assemble(pq, favorites)
	results := make([]tzconvert.ConvertedTime, 0, len(list))
	for _, target := range list {
		label := target.Label
		if label == "" && target.ZoneID == pq.SourceZone {
			label = resolver.DisambiguationLabel(target.ZoneID, pq.SourceLabel)
		}
		converted, err := converter.Convert(pq.Hour, pq.Minute, pq.SourceZone, target.ZoneID, label)
		if err != nil {
			return nil, err
		}
		results = append(results, converted)
	}
	return results, nil
}
