// Package ofx converts OFX/QFX bank statements into cashflow transactions.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/tobenna/stockpot/internal/model"
)

// Statement is the subset of an OFX statement the cashflow engine needs:
// the sign-classified transactions and the ledger balance. When the file
// carries multiple statements, transactions are concatenated and balances
// summed into one cash position.
type Statement struct {
	AccountIDs   []string
	Transactions []model.Transaction
	Balance      decimal.Decimal
}

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// Mixed-case SEVERITY values and SGML-style tags missing their closing
// bracket both appear in bank exports and break strict parsing.
var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagRegex  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocess fixes common formatting issues in OFX files before parsing.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	return openTagRegex.ReplaceAllString(content, "$1>")
}

// ParseStatement parses an OFX/QFX file into cashflow transactions.
// Credits become income, debits become expenses, and amounts are absolute.
func (p *Parser) ParseStatement(ctx context.Context, reader io.Reader) (*Statement, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	stmt := &Statement{Balance: decimal.Zero}
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if bank, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			stmt.AccountIDs = append(stmt.AccountIDs, string(bank.BankAcctFrom.AcctID))
			stmt.Balance = stmt.Balance.Add(decimal.NewFromBigRat(&bank.BalAmt.Rat, 2))
			stmt.Transactions = append(stmt.Transactions, p.convertList(bank.BankTranList)...)
		}
	}

	for _, msg := range resp.CreditCard {
		if cc, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			stmt.AccountIDs = append(stmt.AccountIDs, string(cc.CCAcctFrom.AcctID))
			stmt.Balance = stmt.Balance.Add(decimal.NewFromBigRat(&cc.BalAmt.Rat, 2))
			stmt.Transactions = append(stmt.Transactions, p.convertList(cc.BankTranList)...)
		}
	}

	slog.Info("Parsed OFX statement",
		"transactions", len(stmt.Transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts,
		"balance", stmt.Balance.String())

	return stmt, nil
}

// convertList converts an OFX transaction list into cashflow transactions.
func (p *Parser) convertList(list *ofxgo.TransactionList) []model.Transaction {
	if list == nil {
		return nil
	}

	transactions := make([]model.Transaction, 0, len(list.Transactions))
	for _, ofxTx := range list.Transactions {
		transactions = append(transactions, p.convert(ofxTx))
	}
	return transactions
}

// convert maps one OFX transaction: positive amounts are income, the rest
// expenses, and the amount is carried as an absolute decimal.
func (p *Parser) convert(ofxTx ofxgo.Transaction) model.Transaction {
	txType := model.TypeExpense
	if ofxTx.TrnAmt.Sign() > 0 {
		txType = model.TypeIncome
	}

	return model.Transaction{
		Date:   ofxTx.DtPosted.Time,
		Type:   txType,
		Amount: decimal.NewFromBigRat(&ofxTx.TrnAmt.Rat, 2).Abs(),
	}
}
