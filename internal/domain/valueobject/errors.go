package valueobject

import (
	"errors"
	"fmt"
)

// Construction errors: malformed input is rejected before any computation runs.
var (
	ErrNegativeAmount      = errors.New("amount must not be negative")
	ErrExceedsMaximum      = errors.New("amount exceeds the supported maximum")
	ErrInvalidAmount       = errors.New("amount is not a valid monetary value")
	ErrInvalidInterestRate = errors.New("interest rate is outside the supported range")
	ErrInvalidTerm         = errors.New("term is outside the supported range")
	ErrInvalidPercentage   = errors.New("percentage must be between 0 and 100")
)

// Mathematical infeasibility: the inputs admit no valid answer. These failures
// are definitional, never transient, and are not retried.
var (
	ErrInsufficientPayment = errors.New("payment does not cover the accruing interest")
	ErrPaymentTooHigh      = errors.New("payment exceeds what the loan can absorb")
	ErrMathematical        = errors.New("calculation has no solution for the given inputs")
)

// Consistency errors: the four loan parameters disagree with each other.
var (
	ErrInconsistentParameters = errors.New("loan parameters do not satisfy the annuity formula")
)

// SimulationError reports a failure deep inside the month-by-month simulation.
// It carries enough numeric context to diagnose the failure without replaying
// the run.
type SimulationError struct {
	Op      string
	Month   int
	Balance Money
	Err     error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("%s: month %d, balance %s: %v", e.Op, e.Month, e.Balance, e.Err)
}

func (e *SimulationError) Unwrap() error {
	return e.Err
}

// NewSimulationError wraps err with the simulation position at which it occurred.
func NewSimulationError(op string, month int, balance Money, err error) *SimulationError {
	return &SimulationError{Op: op, Month: month, Balance: balance, Err: err}
}
