package bookingflow

import (
	"context"

	"go.uber.org/zap"
)

const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

type Notification struct {
	Title       string
	Description string
	Variant     string
}

// Notifier is the transient user-facing message surface. Fire and forget, no
// acknowledgment.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

type ZapNotifier struct {
	log *zap.Logger
}

func NewZapNotifier(log *zap.Logger) *ZapNotifier {
	return &ZapNotifier{log: log}
}

func (z *ZapNotifier) Notify(_ context.Context, n Notification) {
	if n.Variant == VariantDestructive {
		z.log.Warn(n.Title, zap.String("description", n.Description))
		return
	}
	z.log.Info(n.Title, zap.String("description", n.Description))
}

var _ Notifier = (*ZapNotifier)(nil)
