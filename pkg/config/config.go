package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "SHOPZO_DB_DSN"
	EnvDBHost = "SHOPZO_DB_HOST"
	EnvDBUser = "SHOPZO_DB_USER"
	EnvDBName = "SHOPZO_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	OpenAI       OpenAIConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPZO_APP_ENV" required:"true"`
	Port         string `envconfig:"SHOPZO_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SHOPZO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPZO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SHOPZO_DB_DSN"`
	Driver string `envconfig:"SHOPZO_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SHOPZO_DB_HOST"`
	LegacyPort     int    `envconfig:"SHOPZO_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SHOPZO_DB_USER"`
	LegacyPassword string `envconfig:"SHOPZO_DB_PASSWORD"`
	LegacyName     string `envconfig:"SHOPZO_DB_NAME"`
	LegacySSLMode  string `envconfig:"SHOPZO_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SHOPZO_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SHOPZO_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SHOPZO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SHOPZO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SHOPZO_REDIS_URL" required:"true"`
	Address      string        `envconfig:"SHOPZO_REDIS_ADDR"`
	Password     string        `envconfig:"SHOPZO_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHOPZO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHOPZO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHOPZO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHOPZO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOPZO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHOPZO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"SHOPZO_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"SHOPZO_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"SHOPZO_JWT_EXPIRATION_MINUTES" default:"60"`
	SessionTTLMinutes int    `envconfig:"SHOPZO_SESSION_TTL_MINUTES" default:"43200"`
}

// SessionTTL returns the server-side session TTL configured in minutes.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"SHOPZO_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SHOPZO_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SHOPZO_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SHOPZO_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SHOPZO_ARGON_KEY_LEN" default:"32"`
}

type OpenAIConfig struct {
	APIKey  string        `envconfig:"SHOPZO_OPENAI_API_KEY"`
	Model   string        `envconfig:"SHOPZO_OPENAI_MODEL" default:"gpt-4o-mini"`
	BaseURL string        `envconfig:"SHOPZO_OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	Timeout time.Duration `envconfig:"SHOPZO_OPENAI_TIMEOUT" default:"30s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SHOPZO_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
