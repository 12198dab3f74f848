package email

import (
	"context"
	"fmt"

	"github.com/zvrva/tourbooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("notify user %s: booking %s is now %s (package %s, travel %s)\n",
		event.UserID, event.BookingID, event.Status, event.PackageID, event.TravelDate)
	return nil
}
