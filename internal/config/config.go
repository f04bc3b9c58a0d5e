package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DataSourceCSV      = "csv"
	DataSourcePostgres = "postgres"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Dataset       Dataset       `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	OpenAI        OpenAI        `mapstructure:",squash"`
	Anomaly       Anomaly       `mapstructure:",squash"`
	AlertsMonitor AlertsMonitor `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"app_version"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_origins"`

	// Acima destes limites a requisição é registrada como lenta. Perguntas em
	// linguagem natural esperam pelo tradutor e têm limite próprio.
	SlowRequestThreshold time.Duration `mapstructure:"slow_request_threshold"`
	SlowQueryThreshold   time.Duration `mapstructure:"slow_query_threshold"`
}

type Dataset struct {
	Source string `mapstructure:"data_source"`
	Path   string `mapstructure:"data_path"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Table    string `mapstructure:"database_table"`
}

type OpenAI struct {
	APIKey      string        `mapstructure:"openai_api_key"`
	Model       string        `mapstructure:"openai_model"`
	BaseURL     string        `mapstructure:"openai_base_url"`
	Timeout     time.Duration `mapstructure:"openai_timeout"`
	Temperature float64       `mapstructure:"openai_temperature"`
}

// Anomaly guarda os limites usados na detecção de anomalias
type Anomaly struct {
	LookbackDays       int     `mapstructure:"anomaly_lookback_days"`
	VariationThreshold float64 `mapstructure:"anomaly_variation_threshold"`
	ZScoreThreshold    float64 `mapstructure:"anomaly_zscore_threshold"`
}

type AlertsMonitor struct {
	Enabled      bool   `mapstructure:"alerts_monitor_enabled"`
	CronSchedule string `mapstructure:"alerts_monitor_cron"`
	Period       string `mapstructure:"alerts_monitor_period"`
	Metric       string `mapstructure:"alerts_monitor_metric"`
}

type Auth struct {
	Enabled      bool          `mapstructure:"auth_enabled"`
	Secret       string        `mapstructure:"auth_secret"`
	Username     string        `mapstructure:"auth_username"`
	PasswordHash string        `mapstructure:"auth_password_hash"`
	TokenTTL     time.Duration `mapstructure:"auth_token_ttl"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")
	viper.SetDefault("SLOW_REQUEST_THRESHOLD", "500ms")
	viper.SetDefault("SLOW_QUERY_THRESHOLD", "15s")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_VERSION", "1.0.0")

	viper.SetDefault("DATA_SOURCE", DataSourceCSV)
	viper.SetDefault("DATA_PATH", "data/transactions.csv")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/transactions?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_TABLE", "transactions")

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_TIMEOUT", "30s")
	viper.SetDefault("OPENAI_TEMPERATURE", 0.1)

	// Limites de anomalia: 14 dias de histórico, 15% de variação ou |z| > 2
	viper.SetDefault("ANOMALY_LOOKBACK_DAYS", 14)
	viper.SetDefault("ANOMALY_VARIATION_THRESHOLD", 15.0)
	viper.SetDefault("ANOMALY_ZSCORE_THRESHOLD", 2.0)

	viper.SetDefault("ALERTS_MONITOR_ENABLED", false)
	viper.SetDefault("ALERTS_MONITOR_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("ALERTS_MONITOR_PERIOD", "d7")
	viper.SetDefault("ALERTS_MONITOR_METRIC", "tpv")

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_USERNAME", "admin")
	viper.SetDefault("AUTH_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar configuração")
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	for i, origin := range config.Server.CorsOrigins {
		config.Server.CorsOrigins[i] = strings.TrimSpace(origin)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejeita combinações que impediriam o serviço de funcionar
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DataSourceCSV:
		if c.Dataset.Path == "" {
			return errors.New("DATA_PATH é obrigatório quando DATA_SOURCE=csv")
		}
	case DataSourcePostgres:
		if c.Database.Table == "" {
			return errors.New("DATABASE_TABLE é obrigatório quando DATA_SOURCE=postgres")
		}
	default:
		return errors.Errorf("DATA_SOURCE inválido: %q", c.Dataset.Source)
	}

	if c.Anomaly.LookbackDays <= 0 {
		return errors.New("ANOMALY_LOOKBACK_DAYS deve ser positivo")
	}
	if c.Anomaly.VariationThreshold <= 0 || c.Anomaly.ZScoreThreshold <= 0 {
		return errors.New("limites de anomalia devem ser positivos")
	}

	if c.Server.SlowRequestThreshold < 0 || c.Server.SlowQueryThreshold < 0 {
		return errors.New("SLOW_REQUEST_THRESHOLD e SLOW_QUERY_THRESHOLD não podem ser negativos")
	}

	if c.Auth.Enabled && (c.Auth.Secret == "" || c.Auth.PasswordHash == "") {
		return errors.New("AUTH_ENABLED exige AUTH_SECRET e AUTH_PASSWORD_HASH")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
