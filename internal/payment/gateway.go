package payment

import "context"

type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
	OutcomeCancelled Outcome = "cancelled"
)

// CheckoutRequest carries what the widget needs to identify the purchase. Token
// is the opaque token the client-side widget produced; AmountPaisa is the price
// in minor units.
type CheckoutRequest struct {
	Token       string
	AmountPaisa int64
	ProductID   string
	ProductName string
	ProductURL  string
}

type CheckoutResult struct {
	Outcome   Outcome
	Reference string
	Err       error
}

// Handle is the pending checkout. Exactly one result is delivered on Result.
type Handle struct {
	result chan CheckoutResult
}

func NewHandle() *Handle {
	return &Handle{result: make(chan CheckoutResult, 1)}
}

func (h *Handle) Result() <-chan CheckoutResult {
	return h.result
}

// Deliver hands the outcome to the waiter. The channel is buffered so a late
// delivery after the waiter gave up never blocks the gateway.
func (h *Handle) Deliver(res CheckoutResult) {
	select {
	case h.result <- res:
	default:
	}
}

// Gateway is the injected checkout capability. Implementations report the
// outcome asynchronously through the handle; callers never create a booking
// before the handle reports success.
type Gateway interface {
	Name() string
	StartCheckout(ctx context.Context, req CheckoutRequest) (*Handle, error)
}
