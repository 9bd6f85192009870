package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/ostrenko/circulation-service/internal/model"
	"github.com/ostrenko/circulation-service/internal/server"
	"github.com/ostrenko/circulation-service/pkg/kafka"
	"github.com/ostrenko/circulation-service/pkg/logger"
	"github.com/ostrenko/circulation-service/pkg/postgres"
)

type Fines struct {
	Enabled      bool   `envconfig:"FINES_ENABLED" default:"true"`
	AmountPerDay int64  `envconfig:"FINE_AMOUNT_PER_DAY" default:"5000"`
	IntervalUnit string `envconfig:"FINE_INTERVAL_UNIT" default:"DAILY"`
	IntervalDays int    `envconfig:"FINE_INTERVAL_DAYS" default:"1"`
}

// Snapshot builds the read-only settings view consumed per accrual run.
func (f Fines) Snapshot() model.FineSettings {
	return model.FineSettings{
		Enabled:          f.Enabled,
		FineAmountPerDay: f.AmountPerDay,
		IntervalUnit:     model.FineIntervalUnit(f.IntervalUnit),
		IntervalDays:     f.IntervalDays,
	}
}

type Scheduler struct {
	FineAccrualInterval      time.Duration `envconfig:"FINE_ACCRUAL_INTERVAL" default:"24h"`
	ReservationSweepInterval time.Duration `envconfig:"RESERVATION_SWEEP_INTERVAL" default:"1h"`
}

type Config struct {
	Server       server.Config `yaml:"server"`
	Database     postgres.Config
	Kafka        kafka.Config
	KafkaEnabled bool `envconfig:"KAFKA_ENABLED" default:"false"`
	Fines        Fines
	Scheduler    Scheduler
	Log          logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = timeout
	}
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
