package email

import (
	"context"
	"log"

	"stayvista/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	log.Printf("send email to %s: %s for %q (%s - %s), $%.2f",
		event.GuestEmail, event.Type, event.Title, event.From, event.To, event.Price)
	return nil
}
