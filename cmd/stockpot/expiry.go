package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tobenna/stockpot/internal/cli"
	"github.com/tobenna/stockpot/internal/common"
	"github.com/tobenna/stockpot/internal/config"
	"github.com/tobenna/stockpot/internal/expiry"
	"github.com/tobenna/stockpot/internal/model"
)

func expiryCmd() *cobra.Command {
	var (
		refDate  string
		output   string
		asJSON   bool
		progress bool
	)

	cmd := &cobra.Command{
		Use:   "expiry [input.json]",
		Short: "Analyze perishable inventory for expiry risk",
		Long: `Analyze a batch of inventory records and bucket each item into an
expiry severity tier with prioritized recommendations.

The input is either a JSON array of item records, or an object with an
"inventory" key and an optional "current_date". Reads stdin when no file is
given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}

			batch, err := expiry.ParseInput(data, time.Now().UTC())
			if err != nil {
				return emitExpiryError(err, asJSON, output)
			}

			// An explicit --date overrides any date carried by the input.
			if refDate != "" {
				ref, err := model.ParseISODate(refDate)
				if err != nil {
					return emitExpiryError(fmt.Errorf("%w: %q (expected ISO format YYYY-MM-DD)",
						common.ErrInvalidReferenceDate, refDate), asJSON, output)
				}
				batch.ReferenceDate = ref
				batch.ExplicitDate = true
			}

			thresholds, err := config.LoadExpiryThresholds(viper.GetViper())
			if err != nil {
				return err
			}

			analyzer, err := expiry.NewAnalyzer(thresholds)
			if err != nil {
				return err
			}

			if progress && !asJSON {
				bar := newProgressBar(len(batch.Items), "Analyzing inventory")
				analyzer.Progress = func(processed, _ int) {
					_ = bar.Set(processed)
				}
			}

			result, err := analyzer.Analyze(batch)
			if err != nil {
				return emitExpiryError(err, asJSON, output)
			}

			if asJSON || output != "" {
				if err := writeJSON(result, output); err != nil {
					return err
				}
				if asJSON {
					return nil
				}
			}

			cmd.Println(cli.RenderExpiryReport(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&refDate, "date", "", "reference date for expiry calculations (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result JSON to a file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON instead of a styled report")
	cmd.Flags().BoolVar(&progress, "progress", true, "show a progress bar while analyzing")

	return cmd
}

// emitExpiryError surfaces a fatal batch error. JSON consumers get the
// uniform error-result shape; otherwise the error propagates to the CLI.
func emitExpiryError(err error, asJSON bool, output string) error {
	if asJSON || output != "" {
		if writeErr := writeJSON(expiry.ErrorResult(err), output); writeErr != nil {
			return writeErr
		}
		if asJSON {
			return nil
		}
	}
	return common.NewUserError("inventory analysis failed", err)
}
