package finances

import (
	"errors"
	"strings"

	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/ledger"
	"github.com/julianstephens/dashlit/internal/models"
)

type FinanceAddCmd struct {
	Label   string `arg:"" help:"What the money was for."`
	Amount  string `arg:"" help:"Amount, positive for income. Use -- before a negative amount or pass --expense."`
	Expense bool   `short:"x" help:"Record the amount as an expense."`
}

func (c *FinanceAddCmd) Run(ctx *cli.Context) error {
	amount := strings.TrimSpace(c.Amount)
	if c.Expense && !strings.HasPrefix(amount, "-") {
		amount = "-" + strings.TrimPrefix(amount, "+")
	}

	if strings.TrimSpace(c.Label) == "" {
		return errors.New("label cannot be empty")
	}
	if _, ok := ledger.ParseAmount(amount); !ok {
		return errors.New("amount must be a number such as 12.50 or -3")
	}

	tx, err := ctx.Dashboard().Ledger.Add(c.Label, amount)
	if err != nil {
		return err
	}
	ctx.Printf("Added %s %s\n", tx.Label, ledger.FormatSigned(tx.Decimal()))
	return nil
}

type FinanceListCmd struct {
	IDs bool `help:"Show transaction ids."`
}

func (c *FinanceListCmd) Run(ctx *cli.Context) error {
	l := ctx.Dashboard().Ledger
	txs := l.Snapshot()
	if len(txs) == 0 {
		ctx.Println("No transactions yet.")
		return nil
	}

	for i, tx := range txs {
		date := "          "
		if tx.CreatedAt != nil {
			date = tx.CreatedAt.Local().Format(constants.DateFormat)
		}
		if c.IDs {
			ctx.Printf("%2d. %s  %-20s %12s  (%s)\n", i+1, date, tx.Label, ledger.FormatSigned(tx.Decimal()), tx.ID)
		} else {
			ctx.Printf("%2d. %s  %-20s %12s\n", i+1, date, tx.Label, ledger.FormatSigned(tx.Decimal()))
		}
	}
	ctx.Printf("\nBalance: %s\n", ledger.FormatSigned(l.Balance()))
	return nil
}

type FinanceRemoveCmd struct {
	Ref string `arg:"" help:"Transaction number, id, or id prefix."`
}

func (c *FinanceRemoveCmd) Run(ctx *cli.Context) error {
	l := ctx.Dashboard().Ledger
	txs := l.Snapshot()
	id, err := cli.ResolveRef(c.Ref, txIDs(txs))
	if err != nil {
		return err
	}
	if err := l.Remove(id); err != nil {
		return err
	}
	for _, tx := range txs {
		if tx.ID == id {
			ctx.Printf("Removed %s %s\n", tx.Label, ledger.FormatSigned(tx.Decimal()))
		}
	}
	return nil
}

type FinanceBalanceCmd struct{}

func (c *FinanceBalanceCmd) Run(ctx *cli.Context) error {
	l := ctx.Dashboard().Ledger
	ctx.Printf("Income:   %s\n", ledger.FormatSigned(l.Income()))
	ctx.Printf("Expenses: %s\n", ledger.FormatSigned(l.Expenses()))
	ctx.Printf("Balance:  %s\n", ledger.FormatSigned(l.Balance()))
	return nil
}

// FinanceCmd groups the ledger subcommands
type FinanceCmd struct {
	Add     FinanceAddCmd     `cmd:"" help:"Record income or an expense."`
	List    FinanceListCmd    `cmd:"" help:"List transactions, newest first." default:"1"`
	Remove  FinanceRemoveCmd  `cmd:"" help:"Delete a transaction."`
	Balance FinanceBalanceCmd `cmd:"" help:"Show income, expenses and balance."`
}

func txIDs(txs []models.Transaction) []string {
	ids := make([]string, len(txs))
	for i, tx := range txs {
		ids[i] = tx.ID
	}
	return ids
}
