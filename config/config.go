package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Auth     AuthConfig
	Kafka    KafkaConfig
	S3       S3Config
	Pipeline PipelineConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// AuthConfig holds the pre-shared service credentials exchanged for tokens.
type AuthConfig struct {
	ClientID     string
	ClientSecret string
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
	GroupID string
}

type S3Config struct {
	Enabled      bool
	Bucket       string
	UsePathStyle bool
}

type PipelineConfig struct {
	DataSource      string
	BatchSize       int
	StagingCacheTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	stagingCacheTTL, err := time.ParseDuration(viper.GetString("STAGING_CACHE_TTL"))
	if err != nil {
		stagingCacheTTL = 30 * time.Second
	}

	batchSize := viper.GetInt("PIPELINE_BATCH_SIZE")
	if batchSize <= 0 {
		batchSize = 500
	}

	dataSource := viper.GetString("PIPELINE_DATA_SOURCE")
	if dataSource == "" {
		dataSource = "FHIR-R4-API"
	}

	migrationsDir := viper.GetString("DB_MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "db/migrations"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASSWORD"),
			Name:          viper.GetString("DB_NAME"),
			MigrationsDir: migrationsDir,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Auth: AuthConfig{
			ClientID:     viper.GetString("AUTH_CLIENT_ID"),
			ClientSecret: viper.GetString("AUTH_CLIENT_SECRET"),
		},
		Kafka: KafkaConfig{
			Enabled: viper.GetBool("KAFKA_ENABLED"),
			Brokers: viper.GetStringSlice("KAFKA_BROKERS"),
			Topic:   viper.GetString("KAFKA_TOPIC"),
			GroupID: viper.GetString("KAFKA_GROUP_ID"),
		},
		S3: S3Config{
			Enabled:      viper.GetBool("S3_ENABLED"),
			Bucket:       viper.GetString("S3_BUCKET"),
			UsePathStyle: viper.GetBool("S3_USE_PATH_STYLE"),
		},
		Pipeline: PipelineConfig{
			DataSource:      dataSource,
			BatchSize:       batchSize,
			StagingCacheTTL: stagingCacheTTL,
		},
	}

	return config, nil
}
