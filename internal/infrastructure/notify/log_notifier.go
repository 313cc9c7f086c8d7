// Package notify provides notification sinks consumed by the queue dispatcher.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// LogNotifier writes notifications as structured log lines. Real mail
// delivery is handled outside this service; this sink keeps the full audit
// trail in the logs.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Send(_ context.Context, notification ports.Notification) error {
	n.log.Info().
		Str("kind", string(notification.Kind)).
		Str("recipient", notification.Recipient).
		Str("subject", notification.Subject).
		Msg("notification dispatched")
	return nil
}
