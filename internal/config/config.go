package config

import (
	"crypto"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/golang-jwt/jwt/v4"
)

const jwtSigningAlgorithmEd25519 = "EdDSA"

const (
	// StorageDriverPostgres keeps domain data in PostgreSQL
	StorageDriverPostgres = "postgres"
	// StorageDriverMongo keeps domain data in MongoDB
	StorageDriverMongo = "mongo"
)

// HttpCfg is http server config
type HttpCfg struct {
	Port            int           `env:"HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// GrpcCfg is gRPC server config
type GrpcCfg struct {
	Enabled bool `env:"GRPC_ENABLED" envDefault:"true"`
	Port    int  `env:"GRPC_PORT" envDefault:"3010"`
}

// LogCfg is logger config
type LogCfg struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	JSON  bool   `env:"LOG_JSON" envDefault:"true"`
}

// StorageCfg selects store for customers, tasks and drafts
type StorageCfg struct {
	Driver         string        `env:"STORAGE_DRIVER" envDefault:"postgres"`
	ConnectTimeout time.Duration `env:"STORAGE_CONNECT_TIMEOUT" envDefault:"5s"`
}

// MongoCfg is mongodb connection config
type MongoCfg struct {
	Host        string `env:"MONGO_HOST" envDefault:"mongo-taskdesk"`
	User        string `env:"MONGO_USER" envDefault:""`
	Password    string `env:"MONGO_PASSWORD" envDefault:""`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	Database    string `env:"MONGO_DB" envDefault:"taskdesk"`
	ReplicaSet  string `env:"MONGO_REPLICA_SET" envDefault:"rs0"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

// PostgresCfg is postgres connection config
type PostgresCfg struct {
	Host        string `env:"POSTGRES_HOST" envDefault:"pg-taskdesk"`
	User        string `env:"POSTGRES_USER"`
	Password    string `env:"POSTGRES_PASSWORD"`
	Database    string `env:"POSTGRES_DB"`
	SslMode     string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"100"`
}

// JwtCfg is config of jwt issued to agents
type JwtCfg struct {
	Issuer         string        `env:"AUTH_JWT_ISSUER" envDefault:"taskdesk-api"`
	TimeToLive     time.Duration `env:"AUTH_JWT_TIME_TO_LIVE" envDefault:"10m"`
	PrivateKeyFile string        `env:"AUTH_JWT_PRIVATE_KEY_FILE" envDefault:""`
	PublicKeyFile  string        `env:"AUTH_JWT_PUBLIC_KEY_FILE" envDefault:""`
	SigningMethod  jwt.SigningMethod
	PrivateKey     crypto.PrivateKey
	PublicKey      crypto.PublicKey
}

// RefreshTokenCfg is config of agent refresh tokens
type RefreshTokenCfg struct {
	MaxCount   int           `env:"AUTH_REFRESH_TOKEN_MAX_COUNT" envDefault:"5"`
	TimeToLive time.Duration `env:"AUTH_REFRESH_TOKEN_TIME_TO_LIVE" envDefault:"720h"`
}

// AuthCfg is agent authentication config
type AuthCfg struct {
	Enabled         bool `env:"AUTH_ENABLED" envDefault:"false"`
	JwtCfg          JwtCfg
	RefreshTokenCfg RefreshTokenCfg
}

// Config is application config
type Config struct {
	HttpCfg     HttpCfg
	GrpcCfg     GrpcCfg
	LogCfg      LogCfg
	StorageCfg  StorageCfg
	MongoCfg    MongoCfg
	PostgresCfg PostgresCfg
	AuthCfg     AuthCfg
}

// Build builds config from environment variables
func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	switch cfg.StorageCfg.Driver {
	case StorageDriverPostgres, StorageDriverMongo:
	default:
		return cfg, fmt.Errorf("unknown storage driver %s", cfg.StorageCfg.Driver)
	}

	if !cfg.AuthCfg.Enabled {
		return cfg, nil
	}

	jwtCfg, err := loadJwtKeys(cfg.AuthCfg.JwtCfg)
	if err != nil {
		return cfg, err
	}
	cfg.AuthCfg.JwtCfg = jwtCfg

	return cfg, nil
}

func loadJwtKeys(cfg JwtCfg) (JwtCfg, error) {
	cfg.SigningMethod = jwt.GetSigningMethod(jwtSigningAlgorithmEd25519)

	jwtPrivateKeyBytes, err := os.ReadFile(cfg.PrivateKeyFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to read private key file for jwt - %w", err)
	}

	jwtPrivateKey, err := jwt.ParseEdPrivateKeyFromPEM(jwtPrivateKeyBytes)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse private key for jwt - %w", err)
	}
	cfg.PrivateKey = jwtPrivateKey

	jwtPublicKeyBytes, err := os.ReadFile(cfg.PublicKeyFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to read public key file for jwt - %w", err)
	}

	jwtPublicKey, err := jwt.ParseEdPublicKeyFromPEM(jwtPublicKeyBytes)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse public key for jwt - %w", err)
	}
	cfg.PublicKey = jwtPublicKey

	return cfg, nil
}
