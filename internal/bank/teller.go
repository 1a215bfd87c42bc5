package bank

import (
	"fmt"
	"math"
)

// ActionKind names the last accepted command for display.
type ActionKind string

const (
	ActionDeposit  ActionKind = "deposit"
	ActionWithdraw ActionKind = "withdraw"
	ActionReset    ActionKind = "reset"
)

// LastAction is display state kept next to the machine, not inside it.
type LastAction struct {
	Kind   ActionKind
	Amount int64
}

// String renders the action the way the bank view shows it.
func (a LastAction) String() string {
	switch a.Kind {
	case ActionDeposit:
		return "Deposited " + FormatAmount(a.Amount)
	case ActionWithdraw:
		return "Withdrew " + FormatAmount(a.Amount)
	case ActionReset:
		return "Account Reset"
	default:
		return ""
	}
}

// Teller checks caller preconditions before dispatching to Transition and
// remembers the last accepted action. The zero value is ready to use.
type Teller struct {
	account Account
	last    *LastAction
}

// NewTeller returns a teller holding the Initial account.
func NewTeller() *Teller {
	return &Teller{account: Initial}
}

func (t *Teller) Account() Account { return t.account }

func (t *Teller) Balance() int64 { return t.account.Balance }

// Last returns the last accepted action, or false if none was accepted yet.
func (t *Teller) Last() (LastAction, bool) {
	if t.last == nil {
		return LastAction{}, false
	}
	return *t.last, true
}

// CanWithdraw reports whether a withdrawal of amount would be accepted.
func (t *Teller) CanWithdraw(amount int64) bool {
	return amount > 0 && t.account.Balance >= amount
}

// Apply validates cmd and, if it passes, runs it through Transition.
// Rejected commands are never dispatched and leave LastAction untouched.
func (t *Teller) Apply(cmd Command) (LastAction, error) {
	var action LastAction
	switch c := cmd.(type) {
	case Deposit:
		if c.Amount <= 0 {
			return LastAction{}, fmt.Errorf("deposit: %w", ErrBadAmount)
		}
		if t.account.Balance > math.MaxInt64-c.Amount {
			return LastAction{}, fmt.Errorf("deposit %s onto %s: %w", FormatAmount(c.Amount), FormatAmount(t.account.Balance), ErrOverflow)
		}
		action = LastAction{Kind: ActionDeposit, Amount: c.Amount}
	case Withdraw:
		if c.Amount <= 0 {
			return LastAction{}, fmt.Errorf("withdraw: %w", ErrBadAmount)
		}
		if t.account.Balance < c.Amount {
			return LastAction{}, fmt.Errorf("withdraw %s from %s: %w", FormatAmount(c.Amount), FormatAmount(t.account.Balance), ErrInsufficient)
		}
		action = LastAction{Kind: ActionWithdraw, Amount: c.Amount}
	case Reset:
		action = LastAction{Kind: ActionReset}
	default:
		return LastAction{}, fmt.Errorf("unknown command %T", cmd)
	}
	t.account = Transition(t.account, cmd)
	t.last = &action
	return action, nil
}
