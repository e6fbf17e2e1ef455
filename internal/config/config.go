package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/celo-academy/academy-engine/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// RelayConfig holds account-abstraction relay configuration.
// The chain is fixed: the engine always targets one designated network and
// ignores whatever chain the user's wallet is currently connected to.
type RelayConfig struct {
	ProjectID    string        `mapstructure:"project_id"`
	Chain        domain.Chain  `mapstructure:"chain"`
	BaseEndpoint string        `mapstructure:"base_endpoint"`
	HTTPTimeout  time.Duration `mapstructure:"http_timeout"`
}

// ChainConfig holds on-chain read configuration
type ChainConfig struct {
	RPCURL          string        `mapstructure:"rpc_url"`
	ContractAddress string        `mapstructure:"contract_address"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
}

// SessionConfig holds smart-account session tuning.
// The watchdog and retry delays are empirical: relay cold starts and RPC
// variance on Celo regularly push client construction past 5s, and the UI
// must never block past the watchdog.
type SessionConfig struct {
	WatchdogTimeout  time.Duration `mapstructure:"watchdog_timeout"`
	InitRetryLimit   int           `mapstructure:"init_retry_limit"`
	InitRetryDelay   time.Duration `mapstructure:"init_retry_delay"`
	RecoveryDebounce time.Duration `mapstructure:"recovery_debounce"`
}

// SyncConfig holds off-chain mirror reconciliation configuration
type SyncConfig struct {
	MirrorBaseURL string        `mapstructure:"mirror_base_url"`
	SettleDelay   time.Duration `mapstructure:"settle_delay"`
	HTTPTimeout   time.Duration `mapstructure:"http_timeout"`
}

// WalletConfig holds wallet-provider sidecar configuration. The sidecar
// fronts the hosted wallet service and exposes the user's linked wallets
// and a signing endpoint.
type WalletConfig struct {
	ProviderURL string        `mapstructure:"provider_url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// AuthConfig holds API authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// EngineConfig holds configuration for the engine service
type EngineConfig struct {
	BaseConfig     `mapstructure:",squash"`
	Server         ServerConfig   `mapstructure:"server"`
	Database       DatabaseConfig `mapstructure:"database"`
	Relay          RelayConfig    `mapstructure:"relay"`
	Chain          ChainConfig    `mapstructure:"chain"`
	Session        SessionConfig  `mapstructure:"session"`
	Sync           SyncConfig     `mapstructure:"sync"`
	Wallet         WalletConfig   `mapstructure:"wallet"`
	Auth           AuthConfig     `mapstructure:"auth"`
	SponsorshipMap string         `mapstructure:"sponsorship_map"`
}

// LoadEngineConfig loads configuration for the engine service
func LoadEngineConfig(configFile string, envPath string) (*EngineConfig, error) {
	v := configureViper("engine", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("relay.chain", string(domain.ChainCeloMainnet))
	v.SetDefault("relay.base_endpoint", domain.DefaultRelayBaseEndpoint)
	v.SetDefault("relay.http_timeout", "30s")
	v.SetDefault("chain.rpc_url", "https://forno.celo.org")
	// One Celo block every ~5s; 12s keeps at most two blocks of staleness
	v.SetDefault("chain.cache_ttl", "12s")
	// 7s watchdog: the UI must never block longer than this on network variance
	v.SetDefault("session.watchdog_timeout", "7s")
	v.SetDefault("session.init_retry_limit", 3)
	v.SetDefault("session.init_retry_delay", "2s")
	v.SetDefault("session.recovery_debounce", "500ms")
	// 3s settle: bundler acceptance is not inclusion; one Celo block usually lands by then
	v.SetDefault("sync.settle_delay", "3s")
	v.SetDefault("sync.http_timeout", "10s")
	v.SetDefault("wallet.http_timeout", "30s")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config EngineConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the configuration for required fields and consistency
func (c *EngineConfig) Validate() error {
	if c.Relay.ProjectID == "" {
		return errors.New("relay.project_id is required")
	}
	if !domain.IsValidChain(c.Relay.Chain) {
		return fmt.Errorf("relay.chain is not a supported chain: %s", c.Relay.Chain)
	}
	if c.Chain.ContractAddress != "" && !domain.IsValidAddress(c.Chain.ContractAddress) {
		return fmt.Errorf("chain.contract_address is not a valid address: %s", c.Chain.ContractAddress)
	}
	if c.Session.InitRetryLimit <= 0 {
		return errors.New("session.init_retry_limit must be positive")
	}
	return nil
}

// configureViper returns a viper instance with the config file and
// environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("ACADEMY_ENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// Required for viper to map env vars to struct fields when no config file
// exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"sponsorship_map",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Relay
		"relay.project_id",
		"relay.chain",
		"relay.base_endpoint",
		"relay.http_timeout",
		// Chain
		"chain.rpc_url",
		"chain.contract_address",
		"chain.cache_ttl",
		// Session
		"session.watchdog_timeout",
		"session.init_retry_limit",
		"session.init_retry_delay",
		"session.recovery_debounce",
		// Sync
		"sync.mirror_base_url",
		"sync.settle_delay",
		"sync.http_timeout",
		// Wallet
		"wallet.provider_url",
		"wallet.http_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
