package payments

import (
	"context"
	"errors"
)

var ErrInvalidAmount = errors.New("invalid amount")

type PaymentUseCase interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

type PaymentService struct {
	provider IntentCreator
}

func NewPaymentService(provider IntentCreator) *PaymentService {
	return &PaymentService{provider: provider}
}

// CreateIntent converts the price to minor currency units (truncating)
// and returns the provider's client secret. A zero price or an amount
// below one cent is rejected with ErrInvalidAmount.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(price * 100)
	if price == 0 || amount < 1 {
		return "", ErrInvalidAmount
	}
	return s.provider.CreateIntent(ctx, amount)
}

var _ PaymentUseCase = (*PaymentService)(nil)
