package alert

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/cardea-access/cardea/internal/cardea/types"
)

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second

	// disconnectQuiesce is how long Close waits for in-flight publishes,
	// in milliseconds (paho API).
	disconnectQuiesce = 1000
)

var (
	ErrConnectionFailed = errors.New("alert: mqtt connection failed")
	ErrPublishFailed    = errors.New("alert: mqtt publish failed")
)

// Config is the MQTT side of the alarm/event path.
type Config struct {
	Broker      string // e.g. "tcp://broker:1883"
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
	QoS         byte
}

// Notifier publishes decisions and hardware faults to MQTT. Everything is
// best-effort: a broker outage is logged and never blocks or gates
// actuation.
type Notifier struct {
	client pahomqtt.Client
	cfg    Config
	doorID string
	logger *slog.Logger
}

// Connect establishes the broker session with auto-reconnect. It fails fast
// when the broker is unreachable at startup so misconfiguration is visible.
func Connect(cfg Config, doorID string, logger *slog.Logger) (*Notifier, error) {
	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetConnectRetryInterval(5 * time.Second)
	opts.SetOrderMatters(false)

	client := pahomqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("%w: timeout after %v", ErrConnectionFailed, connectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	return &Notifier{client: client, cfg: cfg, doorID: doorID, logger: logger}, nil
}

// Decision publishes one access decision to <prefix>/<door>/decision.
func (n *Notifier) Decision(d types.Decision) {
	payload, err := json.Marshal(d)
	if err != nil {
		n.logger.Error("decision payload marshal failed", "error", err)
		return
	}
	n.publish(n.topic("decision"), payload)
}

// Fault publishes a hardware fault to <prefix>/<door>/fault. This is the
// alarm path: subscribers (panels, monitoring) treat it as actionable.
func (n *Notifier) Fault(err error) {
	payload, merr := json.Marshal(map[string]string{
		"door_id": n.doorID,
		"error":   err.Error(),
		"at":      time.Now().UTC().Format(time.RFC3339Nano),
	})
	if merr != nil {
		n.logger.Error("fault payload marshal failed", "error", merr)
		return
	}
	n.publish(n.topic("fault"), payload)
}

// publish hands the message to the client and returns immediately. The
// token wait happens on a separate goroutine: a stalled broker must never
// hold up the caller, which sits on the actuation path.
func (n *Notifier) publish(topic string, payload []byte) {
	token := n.client.Publish(topic, n.cfg.QoS, false, payload)
	go func() {
		if !token.WaitTimeout(publishTimeout) {
			n.logger.Warn("mqtt publish timed out", "topic", topic)
			return
		}
		if err := token.Error(); err != nil {
			n.logger.Warn("mqtt publish failed", "topic", topic, "error",
				fmt.Errorf("%w: %w", ErrPublishFailed, err))
		}
	}()
}

func (n *Notifier) topic(suffix string) string {
	return fmt.Sprintf("%s/%s/%s", n.cfg.TopicPrefix, n.doorID, suffix)
}

// Close flushes in-flight publishes and disconnects.
func (n *Notifier) Close() {
	n.client.Disconnect(disconnectQuiesce)
}
