package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = ":8080"
	defaultBucket     = "notekeeper-media"
)

type Config struct {
	Env    string
	DB     db
	Server server
	Logger logger
	Redis  redis
	Minio  minio
	Dodo   dodo
	Signup signup
}

type db struct {
	DatabaseURI string
	Migrations  string
}

type server struct {
	RunAddress string
}

type logger struct {
	LogLevel string
}

type redis struct {
	Addr     string
	Password string
}

type minio struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type dodo struct {
	APIKey        string
	WebhookSecret string
	Environment   string
}

type signup struct {
	RequireConfirmation bool
}

// MustLoad reads the server configuration from a .env file (when present) and
// the environment. Values for the database URI and object storage credentials
// are required at startup; everything else has a usable default.
func MustLoad() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("failed to load .env, relying on environment variables")
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MIGRATIONS_PATH", "migrations")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("MINIO_BUCKET", defaultBucket)
	viper.SetDefault("DODO_ENVIRONMENT", "test_mode")

	config := Config{
		Env: viper.GetString("APP_ENV"),
		DB: db{
			DatabaseURI: viper.GetString("DATABASE_URI"),
			Migrations:  viper.GetString("MIGRATIONS_PATH"),
		},
		Server: server{RunAddress: viper.GetString("RUN_ADDRESS")},
		Logger: logger{LogLevel: viper.GetString("LOG_LEVEL")},
		Redis: redis{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
		},
		Minio: minio{
			Endpoint:  viper.GetString("MINIO_ENDPOINT"),
			AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey: viper.GetString("MINIO_SECRET_KEY"),
			Bucket:    viper.GetString("MINIO_BUCKET"),
			UseSSL:    viper.GetBool("MINIO_USE_SSL"),
		},
		Dodo: dodo{
			APIKey:        viper.GetString("DODO_API_KEY"),
			WebhookSecret: viper.GetString("DODO_WEBHOOK_SECRET"),
			Environment:   viper.GetString("DODO_ENVIRONMENT"),
		},
		Signup: signup{
			RequireConfirmation: viper.GetBool("SIGNUP_REQUIRE_CONFIRMATION"),
		},
	}

	if config.DB.DatabaseURI == "" {
		log.Fatalln("DATABASE_URI is required")
	}

	return &config
}
