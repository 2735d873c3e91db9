package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"hyperlocal/internal/core/domain/model/cart"
	"hyperlocal/internal/core/domain/model/kernel"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"15s"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	DBDriver          string        `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName            string        `env:"DB_NAME" envDefault:"hyperlocal"`
	DBSslMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	DBDebug           bool          `env:"DB_DEBUG" envDefault:"false"`
	SQLitePath        string        `env:"SQLITE_PATH" envDefault:"hyperlocal.db"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	JWTSecret  string        `env:"JWT_SECRET,required,notEmpty"`
	JWTTTL     time.Duration `env:"JWT_TTL" envDefault:"72h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	DeliveryBaseFee    string  `env:"DELIVERY_BASE_FEE" envDefault:"20"`
	DeliveryIncludedKm float64 `env:"DELIVERY_INCLUDED_KM" envDefault:"2"`
	DeliveryPerKm      string  `env:"DELIVERY_PER_KM" envDefault:"10"`
	FreeDeliveryTiers  string  `env:"FREE_DELIVERY_TIERS" envDefault:"499:3,999:5"`
	GiftThreshold      string  `env:"GIFT_THRESHOLD" envDefault:"1000"`
	PlatformFeePct     string  `env:"PLATFORM_FEE_PERCENT" envDefault:"5"`

	KafkaHost              string `env:"KAFKA_HOST"`
	KafkaOrderChangedTopic string `env:"KAFKA_ORDER_CHANGED_TOPIC" envDefault:"orders.changed"`

	ElasticAddresses []string `env:"ELASTIC_ADDRESSES" envSeparator:","`
	ElasticUsername  string   `env:"ELASTIC_USERNAME"`
	ElasticPassword  string   `env:"ELASTIC_PASSWORD"`
	ElasticIndex     string   `env:"ELASTIC_PRODUCT_INDEX" envDefault:"products"`

	OutboxRelaySchedule string        `env:"OUTBOX_RELAY_SCHEDULE" envDefault:"* * * * * *"`
	OutboxBatchSize     int           `env:"OUTBOX_BATCH_SIZE" envDefault:"100"`
	StaleCartSchedule   string        `env:"STALE_CART_SCHEDULE" envDefault:"0 0 * * * *"`
	StaleCartMaxAge     time.Duration `env:"STALE_CART_MAX_AGE" envDefault:"720h"`

	QRLevel string `env:"QR_LEVEL" envDefault:"M"`

	SeedOnStart  bool   `env:"SEED_ON_START" envDefault:"false"`
	SeedPassword string `env:"SEED_PASSWORD"`
}

// LoadConfig reads envFile when it exists and then the process environment, which wins.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return Config{}, errors.Wrapf(err, "load %s", envFile)
			}
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DBDriver)
	}
	if _, err := c.PricingPolicy(); err != nil {
		return err
	}
	if _, err := c.PlatformFeePercent(); err != nil {
		return err
	}
	return nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// PricingPolicy builds the delivery fee and promotion rules from the environment.
func (c Config) PricingPolicy() (cart.Policy, error) {
	base, err := kernel.ParseMoney(c.DeliveryBaseFee)
	if err != nil {
		return cart.Policy{}, errors.Wrap(err, "DELIVERY_BASE_FEE")
	}
	perKm, err := kernel.ParseMoney(c.DeliveryPerKm)
	if err != nil {
		return cart.Policy{}, errors.Wrap(err, "DELIVERY_PER_KM")
	}
	if c.DeliveryIncludedKm < 0 {
		return cart.Policy{}, fmt.Errorf("DELIVERY_INCLUDED_KM is negative: %v", c.DeliveryIncludedKm)
	}
	tiers, err := cart.ParseFreeDeliveryTiers(c.FreeDeliveryTiers)
	if err != nil {
		return cart.Policy{}, errors.Wrap(err, "FREE_DELIVERY_TIERS")
	}
	gift, err := kernel.ParseMoney(c.GiftThreshold)
	if err != nil {
		return cart.Policy{}, errors.Wrap(err, "GIFT_THRESHOLD")
	}

	return cart.Policy{
		Fees: cart.FeeSchedule{
			Base:       base,
			IncludedKm: c.DeliveryIncludedKm,
			PerKm:      perKm,
		},
		FreeDelivery:  tiers,
		GiftThreshold: gift,
	}, nil
}

func (c Config) PlatformFeePercent() (decimal.Decimal, error) {
	pct, err := decimal.NewFromString(strings.TrimSpace(c.PlatformFeePct))
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "PLATFORM_FEE_PERCENT")
	}
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, fmt.Errorf("PLATFORM_FEE_PERCENT out of range: %s", pct)
	}
	return pct, nil
}

// KafkaBrokers splits KAFKA_HOST on commas; empty means the log publisher is used.
func (c Config) KafkaBrokers() []string {
	var out []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
