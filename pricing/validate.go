package pricing

import (
	"errors"
	"fmt"
)

// Sentinel errors let callers branch on the specific business failure.
var (
	// ErrInstallmentSum blocks finalization when the installment percentages
	// do not reconcile to 100 within PercentageTolerance.
	ErrInstallmentSum = errors.New("installment percentages must sum to 100")

	ErrItemName      = errors.New("line item name is required")
	ErrItemQuantity  = errors.New("line item quantity must be a positive integer")
	ErrItemUnitPrice = errors.New("line item unit price cannot be negative")
	ErrUnknownPreset = errors.New("unknown installment preset")
)

// ValidationError wraps a sentinel error with human-readable details.
type ValidationError struct {
	Err     error
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate is the finalization gate. It checks every line item and, when
// installments are enabled, that the percentages reconcile to 100 within
// tolerance. The installment error carries the actual sum so the form can
// show the user what to correct. Nothing is auto-corrected.
func (d *Document) Validate() error {
	for i, it := range d.Items {
		if it.Name == "" {
			return &ValidationError{Err: ErrItemName, Details: fmt.Sprintf("item %d", i+1)}
		}
		if it.Quantity <= 0 {
			return &ValidationError{Err: ErrItemQuantity, Details: fmt.Sprintf("item %d", i+1)}
		}
		if it.UnitPrice.IsNegative() {
			return &ValidationError{Err: ErrItemUnitPrice, Details: fmt.Sprintf("item %d", i+1)}
		}
	}

	if d.InstallmentsEnabled {
		sum := d.TotalPercentage()
		if sum.Sub(fullPercentage).Abs().GreaterThan(PercentageTolerance) {
			return &ValidationError{
				Err:     ErrInstallmentSum,
				Details: fmt.Sprintf("current sum is %s%%", sum.String()),
			}
		}
	}

	return nil
}
