package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/statelab/internal/bank"
)

// bank deposit:100 withdraw:40 reset: replay a script through a fresh teller.
func bankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bank <step>...",
		Short: "Replay deposit:<amount>, withdraw:<amount> and reset steps",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runBankScript(cmd.OutOrStdout(), bank.NewTeller(), args)
			return nil
		},
	}
}

// runBankScript prints one line per step. Rejected or malformed steps are
// reported and skipped; they never stop the script.
func runBankScript(w io.Writer, t *bank.Teller, steps []string) {
	for i, step := range steps {
		c, err := parseStep(step)
		if err == nil {
			var action bank.LastAction
			action, err = t.Apply(c)
			if err == nil {
				fmt.Fprintf(w, "%2d %-20s ok        %-20s balance %s\n", i+1, step, action, bank.FormatAmount(t.Balance()))
				continue
			}
		}
		fmt.Fprintf(w, "%2d %-20s rejected  %-20s balance %s\n", i+1, step, reason(err), bank.FormatAmount(t.Balance()))
	}
}

func reason(err error) string {
	switch {
	case errors.Is(err, bank.ErrInsufficient):
		return "insufficient funds"
	case errors.Is(err, bank.ErrBadAmount):
		return "bad amount"
	default:
		return err.Error()
	}
}

func parseStep(s string) (bank.Command, error) {
	verb, arg, _ := strings.Cut(strings.TrimSpace(s), ":")
	switch strings.ToLower(verb) {
	case "reset":
		return bank.Reset{}, nil
	case "deposit", "withdraw":
		amount, err := bank.ParseAmount(arg)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(verb, "deposit") {
			return bank.Deposit{Amount: amount}, nil
		}
		return bank.Withdraw{Amount: amount}, nil
	default:
		return nil, fmt.Errorf("unknown step %q", s)
	}
}
