package notify

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrDeliveryFailed is returned when every configured provider failed, or
// when no provider is configured at all.
var ErrDeliveryFailed = errors.New("notification delivery failed")

// Result reports which provider delivered the message
type Result struct {
	Provider string
	ID       string
}

// Dispatcher tries each configured sender in order until one succeeds.
// Delivery is best-effort: a provider failure is logged and the next provider
// is tried, never raised to the caller mid-chain.
type Dispatcher struct {
	senders []Sender
	logger  *zap.Logger
}

// NewDispatcher creates a dispatcher over the given senders. Nil senders
// (unconfigured providers) are skipped, so callers can pass the constructor
// results straight through.
func NewDispatcher(logger *zap.Logger, senders ...Sender) *Dispatcher {
	d := &Dispatcher{logger: logger}
	for _, s := range senders {
		// Typed nils survive the interface conversion, so compare names via
		// the concrete check each constructor already did.
		if s == nil || isNilSender(s) {
			continue
		}
		d.senders = append(d.senders, s)
	}
	return d
}

func isNilSender(s Sender) bool {
	switch v := s.(type) {
	case *SendGridSender:
		return v == nil
	case *SMTPSender:
		return v == nil
	}
	return false
}

// Configured reports whether at least one provider is available
func (d *Dispatcher) Configured() bool {
	return len(d.senders) > 0
}

// Dispatch attempts delivery through the provider chain. On success it
// returns the provider name and message id; if every provider fails (or none
// is configured) it returns ErrDeliveryFailed.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) (*Result, error) {
	if len(d.senders) == 0 {
		d.logger.Warn("no notification provider configured, dropping message",
			zap.String("subject", msg.Subject),
		)
		return nil, ErrDeliveryFailed
	}

	for _, sender := range d.senders {
		id, err := sender.Send(ctx, msg)
		if err != nil {
			d.logger.Warn("notification provider failed, trying next",
				zap.String("provider", sender.Name()),
				zap.String("to", msg.To),
				zap.Error(err),
			)
			continue
		}

		d.logger.Info("notification delivered",
			zap.String("provider", sender.Name()),
			zap.String("to", msg.To),
			zap.String("message_id", id),
		)
		return &Result{Provider: sender.Name(), ID: id}, nil
	}

	d.logger.Error("all notification providers failed",
		zap.String("to", msg.To),
		zap.Int("providers", len(d.senders)),
	)
	return nil, ErrDeliveryFailed
}
