package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
)

// PaymentGateway is the outbound contract to the payment provider. The core
// creates invoices and reads settlement status; the gateway's webhook handler
// feeds settled payments back in through the mark-order-paid operation.
type PaymentGateway interface {
	// CreateInvoice registers an invoice for the order's total price and
	// returns the URL the customer pays at.
	CreateInvoice(ctx context.Context, orderID kernel.UUID, amount int64) (string, error)

	// StatusFor reports the settlement status of the order's invoice.
	StatusFor(ctx context.Context, orderID kernel.UUID) (payment.Status, error)
}
