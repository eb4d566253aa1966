package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tobenna/stockpot/internal/cashflow"
	"github.com/tobenna/stockpot/internal/cli"
	"github.com/tobenna/stockpot/internal/common"
	"github.com/tobenna/stockpot/internal/config"
	"github.com/tobenna/stockpot/internal/model"
	"github.com/tobenna/stockpot/internal/ofx"
)

func cashflowCmd() *cobra.Command {
	var (
		balance string
		ofxFile string
		output  string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "cashflow [transactions.json]",
		Short: "Predict cashflow depletion risk from a transaction history",
		Long: `Predict how quickly the business burns cash, classify the risk, and
print prioritized recommendations.

The input is a JSON array of {date, type, amount} transactions plus a
--balance, or an OFX/QFX bank statement via --ofx (the ledger balance is
taken from the statement unless --balance overrides it).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transactions, statementBalance, err := loadTransactions(cmd, args, ofxFile)
			if err != nil {
				return common.NewUserError("failed to load transactions", err)
			}

			currentBalance := statementBalance
			if balance != "" {
				parsed, err := decimal.NewFromString(balance)
				if err != nil {
					return common.NewUserError(
						fmt.Sprintf("current balance must be a number, got %q", balance), err)
				}
				currentBalance = &parsed
			}
			if currentBalance == nil {
				return common.NewUserError("no current balance: pass --balance or an --ofx statement", nil)
			}

			thresholds, err := config.LoadCashflowThresholds(viper.GetViper())
			if err != nil {
				return err
			}

			predictor, err := cashflow.NewPredictor(thresholds)
			if err != nil {
				return err
			}

			prediction, err := predictor.Predict(transactions, *currentBalance)
			if err != nil {
				return common.NewUserError("cashflow prediction failed", err)
			}

			if asJSON || output != "" {
				if err := writeJSON(prediction, output); err != nil {
					return err
				}
				if asJSON {
					return nil
				}
			}

			cmd.Println(cli.RenderCashflowReport(prediction))
			return nil
		},
	}

	cmd.Flags().StringVar(&balance, "balance", "", "current cash balance")
	cmd.Flags().StringVar(&ofxFile, "ofx", "", "read transactions from an OFX/QFX bank statement")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the prediction JSON to a file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the prediction as JSON instead of a styled report")

	return cmd
}

// loadTransactions reads the history from an OFX statement or a JSON
// array. The second return value is the statement's ledger balance when an
// OFX file supplied it.
func loadTransactions(cmd *cobra.Command, args []string, ofxFile string) ([]model.Transaction, *decimal.Decimal, error) {
	if ofxFile != "" {
		f, err := os.Open(config.ExpandPath(ofxFile))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open OFX file: %w", err)
		}
		defer func() { _ = f.Close() }()

		statement, err := ofx.NewParser().ParseStatement(cmd.Context(), f)
		if err != nil {
			return nil, nil, err
		}
		return statement.Transactions, &statement.Balance, nil
	}

	data, err := readInput(args)
	if err != nil {
		return nil, nil, err
	}

	var transactions []model.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, nil, fmt.Errorf("input must be a JSON array of transactions: %w", err)
	}
	return transactions, nil, nil
}
