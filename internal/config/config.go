package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/arkagme/meeting-room-api/internal/platform/database"
)

// KafkaConfig holds the Kafka connection settings.
type KafkaConfig struct {
	Brokers []string
}

// ServiceConfig holds all configuration for the meeting room service.
type ServiceConfig struct {
	Port           string
	AppEnv         string
	DBConfig       database.PostgresConfig
	KafkaConfig    KafkaConfig
	AllowedOrigins []string
}

// Load reads configuration from BOOKING_-prefixed environment variables,
// falling back to development defaults.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("BOOKING")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("service_port", "5000")
	v.SetDefault("app_env", "development")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "meeting_rooms")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("kafka_brokers", "localhost:9092")
	v.SetDefault("cors_origins", "http://localhost:5173")

	return &ServiceConfig{
		Port:   ":" + v.GetString("service_port"),
		AppEnv: v.GetString("app_env"),
		DBConfig: database.PostgresConfig{
			Host:     v.GetString("db_host"),
			Port:     v.GetString("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			DBName:   v.GetString("db_name"),
			SSLMode:  v.GetString("db_sslmode"),
		},
		KafkaConfig: KafkaConfig{
			Brokers: splitList(v.GetString("kafka_brokers")),
		},
		AllowedOrigins: splitList(v.GetString("cors_origins")),
	}, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
