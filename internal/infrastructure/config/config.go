package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/marcos-nsantos/bucket-manager/internal/domain/entity"
)

type Config struct {
	Server  ServerConfig
	S3      S3Config
	Session SessionConfig
	Convert ConvertConfig
	Log     LogConfig
	Metrics MetricsConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	MaxUploadSize   int64         `envconfig:"SERVER_MAX_UPLOAD_SIZE" default:"52428800"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

type S3Config struct {
	Endpoint         string        `envconfig:"S3_ENDPOINT"`
	Region           string        `envconfig:"S3_REGION" default:"ap-south-1"`
	Bucket           string        `envconfig:"S3_BUCKET" default:"my-photos-manager02"`
	AccessKeyID      string        `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey  string        `envconfig:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle     bool          `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	OperationTimeout time.Duration `envconfig:"S3_OPERATION_TIMEOUT" default:"30s"`
}

type SessionConfig struct {
	SecretKey string        `envconfig:"SESSION_SECRET_KEY"`
	TTL       time.Duration `envconfig:"SESSION_TTL" default:"12h"`
}

type ConvertConfig struct {
	Devices           DeviceProfiles `envconfig:"CONVERT_DEVICES" default:"laptop:1920x1080,tablet:1024x768,mobile:375x667"`
	DestinationBucket string         `envconfig:"CONVERT_DEST_BUCKET" default:"converted-images02"`
	DestinationPrefix string         `envconfig:"CONVERT_DEST_PREFIX" default:"converted/"`
	LocalQuality      int            `envconfig:"CONVERT_LOCAL_QUALITY" default:"100"`
	EventQuality      int            `envconfig:"CONVERT_EVENT_QUALITY" default:"85"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

// DeviceProfiles decodes "name:WxH,name:WxH" and keeps the declared order.
type DeviceProfiles []entity.DeviceProfile

func (d *DeviceProfiles) Decode(value string) error {
	var profiles DeviceProfiles
	seen := make(map[string]bool)

	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		name, size, ok := strings.Cut(item, ":")
		if !ok || name == "" {
			return fmt.Errorf("device profile %q: expected name:WIDTHxHEIGHT", item)
		}
		if seen[name] {
			return fmt.Errorf("device profile %q: duplicate name", name)
		}

		w, h, ok := strings.Cut(strings.ToLower(size), "x")
		if !ok {
			return fmt.Errorf("device profile %q: expected WIDTHxHEIGHT", item)
		}
		width, err := strconv.Atoi(w)
		if err != nil || width <= 0 {
			return fmt.Errorf("device profile %q: invalid width", item)
		}
		height, err := strconv.Atoi(h)
		if err != nil || height <= 0 {
			return fmt.Errorf("device profile %q: invalid height", item)
		}

		seen[name] = true
		profiles = append(profiles, entity.DeviceProfile{Name: name, Width: width, Height: height})
	}

	if len(profiles) == 0 {
		return fmt.Errorf("no device profiles configured")
	}

	*d = profiles
	return nil
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Convert.validate(); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

func (c ConvertConfig) validate() error {
	if c.LocalQuality < 1 || c.LocalQuality > 100 {
		return fmt.Errorf("CONVERT_LOCAL_QUALITY must be within 1..100, got %d", c.LocalQuality)
	}
	if c.EventQuality < 1 || c.EventQuality > 100 {
		return fmt.Errorf("CONVERT_EVENT_QUALITY must be within 1..100, got %d", c.EventQuality)
	}
	return nil
}
