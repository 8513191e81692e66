package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/hustlib/lending-service/internal/server"
	"github.com/hustlib/lending-service/pkg/kafka"
	"github.com/hustlib/lending-service/pkg/logger"
	"github.com/hustlib/lending-service/pkg/postgres"
)

type Lending struct {
	LoanDays      int           `envconfig:"LOAN_DAYS" default:"30"`
	FinePerDay    int           `envconfig:"FINE_PER_DAY" default:"5"`
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"24h"`
	ProbeInterval time.Duration `envconfig:"PROBE_INTERVAL" default:"5m"`
}

type Config struct {
	Server   server.Config
	Database postgres.Config
	Kafka    kafka.Config
	Lending  Lending
	Log      logger.Log
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

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
