package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable of the controller. All values come from
// environment variables so a unit can be reconfigured without touching
// the binary (relay pin and timings are deployment policy, not code).
type Config struct {
	Env    string `env:"CARDEA_ENV" envDefault:"dev"` // "dev" | "prod"
	DBPath string `env:"CARDEA_DB_PATH" envDefault:"./data/cardea.db"`

	// Identity of the door this controller guards. An empty apartment id
	// marks a shared entrance.
	DoorID          string `env:"CARDEA_DOOR_ID,notEmpty" envDefault:"door-main"`
	DoorApartmentID string `env:"CARDEA_DOOR_APARTMENT_ID"`

	// Relay hardware.
	RelayPin        int           `env:"CARDEA_RELAY_PIN" envDefault:"18"`
	RelayActiveHigh bool          `env:"CARDEA_RELAY_ACTIVE_HIGH" envDefault:"true"`
	PulseDuration   time.Duration `env:"CARDEA_PULSE_DURATION" envDefault:"5s"`
	MaxActiveWindow time.Duration `env:"CARDEA_MAX_ACTIVE_WINDOW" envDefault:"30s"`

	// Input decoding.
	ReaderMode     string        `env:"CARDEA_READER_MODE" envDefault:"timing"` // "timing" | "framed"
	BurstThreshold time.Duration `env:"CARDEA_BURST_THRESHOLD" envDefault:"100ms"`
	InputTimeout   time.Duration `env:"CARDEA_INPUT_TIMEOUT" envDefault:"10s"`
	MaxInputLength int           `env:"CARDEA_MAX_INPUT_LENGTH" envDefault:"20"`

	// Framing for dedicated fixed-framing readers (reader mode "framed").
	FramedPrefixLen int `env:"CARDEA_FRAMED_PREFIX_LEN" envDefault:"0"`
	FramedSuffixLen int `env:"CARDEA_FRAMED_SUFFIX_LEN" envDefault:"0"`
	FramedDigits    int `env:"CARDEA_FRAMED_DIGITS" envDefault:"10"`

	// Store lookups must never stall the scan loop.
	LookupTimeout time.Duration `env:"CARDEA_LOOKUP_TIMEOUT" envDefault:"2s"`

	// Remote trigger gateway.
	GRPCAddr string `env:"CARDEA_GRPC_ADDR" envDefault:":9090"`

	// MQTT alarm/event path. Empty broker disables publishing.
	MQTTBroker      string `env:"CARDEA_MQTT_BROKER"`
	MQTTClientID    string `env:"CARDEA_MQTT_CLIENT_ID" envDefault:"cardea"`
	MQTTUsername    string `env:"CARDEA_MQTT_USERNAME"`
	MQTTPassword    string `env:"CARDEA_MQTT_PASSWORD"`
	MQTTTopicPrefix string `env:"CARDEA_MQTT_TOPIC_PREFIX" envDefault:"cardea"`
	MQTTQoS         int    `env:"CARDEA_MQTT_QOS" envDefault:"1"`

	// Audit retention. 0 days keeps everything.
	AuditRetentionDays int           `env:"CARDEA_AUDIT_RETENTION_DAYS" envDefault:"90"`
	PruneInterval      time.Duration `env:"CARDEA_PRUNE_INTERVAL" envDefault:"6h"`

	LogLevel  string `env:"CARDEA_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"CARDEA_LOG_FORMAT" envDefault:""` // "json" | "text"; empty follows Env
}

// FromEnv parses and validates configuration from the environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Env != "dev" && c.Env != "prod" {
		// fail-soft: treat unknown as dev
		c.Env = "dev"
	}
	if c.RelayPin < 0 {
		return fmt.Errorf("CARDEA_RELAY_PIN must be >= 0, got %d", c.RelayPin)
	}
	if c.PulseDuration <= 0 {
		return fmt.Errorf("CARDEA_PULSE_DURATION must be positive, got %s", c.PulseDuration)
	}
	if c.MaxActiveWindow < c.PulseDuration {
		return fmt.Errorf("CARDEA_MAX_ACTIVE_WINDOW (%s) must be >= pulse duration (%s)",
			c.MaxActiveWindow, c.PulseDuration)
	}
	if c.ReaderMode != "timing" && c.ReaderMode != "framed" {
		return fmt.Errorf("CARDEA_READER_MODE must be \"timing\" or \"framed\", got %q", c.ReaderMode)
	}
	if c.BurstThreshold <= 0 {
		return fmt.Errorf("CARDEA_BURST_THRESHOLD must be positive, got %s", c.BurstThreshold)
	}
	if c.InputTimeout <= 0 {
		return fmt.Errorf("CARDEA_INPUT_TIMEOUT must be positive, got %s", c.InputTimeout)
	}
	if c.MaxInputLength <= 0 {
		return fmt.Errorf("CARDEA_MAX_INPUT_LENGTH must be positive, got %d", c.MaxInputLength)
	}
	if c.ReaderMode == "framed" && c.FramedDigits <= 0 {
		return fmt.Errorf("CARDEA_FRAMED_DIGITS must be positive in framed mode, got %d", c.FramedDigits)
	}
	if c.LookupTimeout <= 0 {
		return fmt.Errorf("CARDEA_LOOKUP_TIMEOUT must be positive, got %s", c.LookupTimeout)
	}
	if c.MQTTQoS < 0 || c.MQTTQoS > 2 {
		return fmt.Errorf("CARDEA_MQTT_QOS must be 0, 1 or 2, got %d", c.MQTTQoS)
	}
	if c.AuditRetentionDays < 0 {
		return fmt.Errorf("CARDEA_AUDIT_RETENTION_DAYS must be >= 0, got %d", c.AuditRetentionDays)
	}
	return nil
}
