package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 72*time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.KafkaBrokers())
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=hyperlocal sslmode=disable", cfg.DSN())

	policy, err := cfg.PricingPolicy()
	require.NoError(t, err)
	assert.True(t, policy.Fees.Base.IsEqual(kernel.MoneyFromInt(20)))
	assert.Len(t, policy.FreeDelivery, 2)
	assert.True(t, policy.GiftThreshold.IsEqual(kernel.MoneyFromInt(1000)))

	fee, err := cfg.PlatformFeePercent()
	require.NoError(t, err)
	assert.True(t, fee.Equal(decimal.NewFromInt(5)))
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("KAFKA_HOST", "")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_DRIVER=sqlite\nKAFKA_HOST=k1:9092, k2:9092\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "from-env", cfg.JWTSecret)
	// godotenv never overrides a variable that is already set, even to empty.
	assert.Empty(t, cfg.KafkaBrokers())
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"DB_DRIVER":            "mysql",
		"FREE_DELIVERY_TIERS":  "499",
		"PLATFORM_FEE_PERCENT": "150",
		"DELIVERY_BASE_FEE":    "twenty",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "secret")
			t.Setenv(key, value)

			_, err := LoadConfig("")
			assert.Error(t, err)
		})
	}
}

func TestConfig_KafkaBrokers(t *testing.T) {
	cfg := Config{KafkaHost: " k1:9092,,k2:9092 "}
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers())
}
