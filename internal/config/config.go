package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Meta          Meta          `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Normalization Normalization `mapstructure:",squash"`
	FatigueSync   FatigueSync   `mapstructure:",squash"`
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

type Meta struct {
	BaseURL        string    `mapstructure:"meta_base_url"`
	URL            string    `mapstructure:"meta_url"`
	Version        string    `mapstructure:"meta_version"`
	AccessToken    string    `mapstructure:"meta_access_token"`
	AppID          string    `mapstructure:"meta_app_id"`
	AppSecret      string    `mapstructure:"meta_app_secret"`
	LongLivedToken string    `mapstructure:"meta_long_lived_token"`
	TokenExpiresAt time.Time `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Normalization define como os registros brutos de métricas são normalizados:
// moeda de exibição, taxas de câmbio estáticas, formato de porcentagem e
// arredondamento. As taxas são informadas como "USD:5.01,EUR:5.91".
type Normalization struct {
	AccountCurrency        string             `mapstructure:"normalization_account_currency"`
	DisplayCurrency        string             `mapstructure:"normalization_display_currency"`
	ExchangeRatesRaw       string             `mapstructure:"normalization_exchange_rates"`
	PercentageInputFormat  string             `mapstructure:"normalization_percentage_input_format"`
	PercentageOutputFormat string             `mapstructure:"normalization_percentage_output_format"`
	RoundingPrecision      int                `mapstructure:"normalization_rounding_precision"`
	TimezoneOffsetMinutes  int                `mapstructure:"normalization_timezone_offset_minutes"`
	ExchangeRates          map[string]float64 `mapstructure:"-"`
}

// FatigueSync configura o agendador de cálculo de fadiga de anúncios
type FatigueSync struct {
	CronSchedule        string `mapstructure:"fatigue_sync_cron"`
	LookbackDays        int    `mapstructure:"fatigue_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"fatigue_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"fatigue_sync_max_concurrent_jobs"`
	RetentionDays       int    `mapstructure:"fatigue_sync_retention_days"`
	Enabled             bool   `mapstructure:"fatigue_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/fatigue")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "https://graph.facebook.com/v22.0")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults de normalização de métricas
	viper.SetDefault("NORMALIZATION_ACCOUNT_CURRENCY", "USD")
	viper.SetDefault("NORMALIZATION_DISPLAY_CURRENCY", "BRL")
	viper.SetDefault("NORMALIZATION_EXCHANGE_RATES", "")
	viper.SetDefault("NORMALIZATION_PERCENTAGE_INPUT_FORMAT", "percentage")
	viper.SetDefault("NORMALIZATION_PERCENTAGE_OUTPUT_FORMAT", "percentage")
	viper.SetDefault("NORMALIZATION_ROUNDING_PRECISION", 2)
	viper.SetDefault("NORMALIZATION_TIMEZONE_OFFSET_MINUTES", 0)

	// Defaults para o cálculo agendado de fadiga
	viper.SetDefault("FATIGUE_SYNC_CRON", "0 5 * * *")        // Todos os dias às 5h da manhã
	viper.SetDefault("FATIGUE_SYNC_LOOKBACK_DAYS", 1)         // 1 dia para buscar dados
	viper.SetDefault("FATIGUE_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("FATIGUE_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("FATIGUE_SYNC_RETENTION_DAYS", 90)       // 90 dias de retenção de scores
	viper.SetDefault("FATIGUE_SYNC_ENABLED", false)           // Habilitar cálculo agendado

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Normalization.ExchangeRates, err = parseExchangeRates(config.Normalization.ExchangeRatesRaw)
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

// parseExchangeRates converte o formato "USD:5.01,EUR:5.91" em um mapa de taxas
func parseExchangeRates(raw string) (map[string]float64, error) {
	rates := make(map[string]float64)
	if strings.TrimSpace(raw) == "" {
		return rates, nil
	}

	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("taxa de câmbio inválida: %q", pair)
		}

		var rate float64
		if _, err := fmt.Sscanf(parts[1], "%f", &rate); err != nil {
			return nil, fmt.Errorf("taxa de câmbio inválida para %s: %w", parts[0], err)
		}

		rates[strings.ToUpper(parts[0])] = rate
	}

	return rates, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
