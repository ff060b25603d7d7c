package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	AWIS        AWIS        `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	TrafficSync TrafficSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// AWIS guarda as credenciais e o endpoint do serviço de informações web.
// SecretKey nunca é logada nem serializada.
type AWIS struct {
	AccessKeyID           string `mapstructure:"awis_access_key_id"`
	SecretKey             string `mapstructure:"awis_secret_key"`
	BaseURL               string `mapstructure:"awis_base_url"`
	RequestTimeoutSeconds int    `mapstructure:"awis_request_timeout_seconds"`
	MaxConcurrentRequests int    `mapstructure:"awis_max_concurrent_requests"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type TrafficSync struct {
	CronSchedule        string `mapstructure:"traffic_sync_cron"`
	LookbackDays        int    `mapstructure:"traffic_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"traffic_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"traffic_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/webinfo")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AWIS_BASE_URL", "https://awis.amazonaws.com/api")
	viper.SetDefault("AWIS_ACCESS_KEY_ID", "your_access_key_id")
	viper.SetDefault("AWIS_SECRET_KEY", "your_secret_key")
	viper.SetDefault("AWIS_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("AWIS_MAX_CONCURRENT_REQUESTS", 8)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("TRAFFIC_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("TRAFFIC_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("TRAFFIC_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("TRAFFIC_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o arquivo .env das localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
