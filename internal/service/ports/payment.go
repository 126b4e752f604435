package ports

import "context"

type PaymentGateway interface {
	Charge(ctx context.Context, requesterID string, amount float64) error
}
