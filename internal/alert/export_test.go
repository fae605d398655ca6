package alert

import (
	"log/slog"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
)

// NewWithClient builds a Notifier over an injected client, bypassing
// Connect. Lets tests run against a fake broker session.
func NewWithClient(client pahomqtt.Client, cfg Config, doorID string, logger *slog.Logger) *Notifier {
	return &Notifier{client: client, cfg: cfg, doorID: doorID, logger: logger}
}
