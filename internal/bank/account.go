package bank

import "math"

// Account is the whole state of the balance machine. Balance is held in cents.
type Account struct {
	Balance int64
}

// Initial is the state the machine starts from and returns to on Reset.
var Initial = Account{Balance: 0}

// Command is one of Deposit, Withdraw or Reset.
type Command interface {
	isCommand()
}

// Deposit adds Amount cents to the balance.
type Deposit struct {
	Amount int64
}

// Withdraw removes Amount cents when the balance covers it.
type Withdraw struct {
	Amount int64
}

// Reset returns the account to Initial.
type Reset struct{}

func (Deposit) isCommand()  {}
func (Withdraw) isCommand() {}
func (Reset) isCommand()    {}

// Transition returns the state after applying cmd to state. It never fails:
// a withdrawal larger than the balance, a deposit that would overflow the
// balance and any unknown command leave the state unchanged.
func Transition(state Account, cmd Command) Account {
	switch c := cmd.(type) {
	case Deposit:
		if c.Amount > 0 && state.Balance > math.MaxInt64-c.Amount {
			return state
		}
		return Account{Balance: state.Balance + c.Amount}
	case Withdraw:
		if state.Balance < c.Amount {
			return state
		}
		return Account{Balance: state.Balance - c.Amount}
	case Reset:
		return Initial
	default:
		return state
	}
}
