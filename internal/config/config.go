package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultSecretKey é o segredo de desenvolvimento; não pode ser usado com o banco habilitado
const DefaultSecretKey = "your_secret_key"

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Data         Data         `mapstructure:",squash"`
	Dashboard    Dashboard    `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Data descreve a planilha de entrada e os nomes das colunas usadas na agregação
type Data struct {
	File                 string `mapstructure:"data_file"`
	Sheet                string `mapstructure:"data_sheet"`
	CategoryColumn       string `mapstructure:"column_category"`
	DocumentNumberColumn string `mapstructure:"column_document_number"`
	DocumentDateColumn   string `mapstructure:"column_document_date"`
	HeaderTextColumn     string `mapstructure:"column_header_text"`
	DivisionColumn       string `mapstructure:"column_division"`
}

type Dashboard struct {
	Title      string `mapstructure:"dashboard_title"`
	LogoURL    string `mapstructure:"dashboard_logo_url"`
	YearSuffix string `mapstructure:"dashboard_year_suffix"`
}

type Database struct {
	Enabled  bool   `mapstructure:"database_enabled"`
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type SnapshotSync struct {
	CronSchedule string `mapstructure:"snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"snapshot_sync_enabled"`
}

type Auth struct {
	SecretKey string        `mapstructure:"secret_key"`
	TokenTTL  time.Duration `mapstructure:"auth_token_ttl"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8050)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.SetDefault("DATA_FILE", "tabelaa.xlsx")
	viper.SetDefault("DATA_SHEET", "") // Vazio = primeira aba
	viper.SetDefault("COLUMN_CATEGORY", "Nature_new")
	viper.SetDefault("COLUMN_DOCUMENT_NUMBER", "Accounting Doc: Number")
	viper.SetDefault("COLUMN_DOCUMENT_DATE", "Accounting Doc: Document Date")
	viper.SetDefault("COLUMN_HEADER_TEXT", "Accounting Doc: Header Text")
	viper.SetDefault("COLUMN_DIVISION", "Division")

	viper.SetDefault("DASHBOARD_TITLE", "MJE Threshold Compliance")
	viper.SetDefault("DASHBOARD_LOGO_URL", "https://www.msd.com.br/wp-content/themes/mhh-mhh2-mcc-theme/images/msd-logo.svg")
	viper.SetDefault("DASHBOARD_YEAR_SUFFIX", "24")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/mje?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("SECRET_KEY", DefaultSecretKey)
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("config: usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("config: arquivo .env lido pelo Viper com sucesso")
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

// Validate valida a configuração e retorna um único erro com todos os problemas encontrados
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Server.Port); err != nil {
		problems = append(problems, fmt.Sprintf("porta inválida '%s': deve ser numérica", c.Server.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("porta inválida %d: deve estar entre 1 e 65535", port))
	}

	if _, err := logrus.ParseLevel(c.App.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("nível de log inválido '%s'", c.App.LogLevel))
	}

	if strings.TrimSpace(c.Data.File) == "" {
		problems = append(problems, "DATA_FILE é obrigatório")
	} else if ext := strings.ToLower(filepath.Ext(c.Data.File)); ext != ".xlsx" && ext != ".xlsm" {
		problems = append(problems, fmt.Sprintf("DATA_FILE deve ser uma planilha .xlsx: %s", c.Data.File))
	}

	columns := map[string]string{
		"COLUMN_CATEGORY":        c.Data.CategoryColumn,
		"COLUMN_DOCUMENT_NUMBER": c.Data.DocumentNumberColumn,
		"COLUMN_DOCUMENT_DATE":   c.Data.DocumentDateColumn,
		"COLUMN_HEADER_TEXT":     c.Data.HeaderTextColumn,
		"COLUMN_DIVISION":        c.Data.DivisionColumn,
	}
	for _, key := range []string{"COLUMN_CATEGORY", "COLUMN_DOCUMENT_NUMBER", "COLUMN_DOCUMENT_DATE", "COLUMN_HEADER_TEXT", "COLUMN_DIVISION"} {
		if strings.TrimSpace(columns[key]) == "" {
			problems = append(problems, fmt.Sprintf("%s não pode ser vazio", key))
		}
	}

	if strings.TrimSpace(c.Dashboard.YearSuffix) == "" {
		problems = append(problems, "DASHBOARD_YEAR_SUFFIX não pode ser vazio")
	}

	if c.SnapshotSync.Enabled {
		if !c.Database.Enabled {
			problems = append(problems, "SNAPSHOT_SYNC_ENABLED exige DATABASE_ENABLED")
		}
		if _, err := cron.ParseStandard(c.SnapshotSync.CronSchedule); err != nil {
			problems = append(problems, fmt.Sprintf("SNAPSHOT_SYNC_CRON inválido '%s': %v", c.SnapshotSync.CronSchedule, err))
		}
	}

	if strings.TrimSpace(c.Auth.SecretKey) == "" {
		problems = append(problems, "SECRET_KEY não pode ser vazio")
	} else if c.Database.Enabled && c.UsesDefaultSecret() {
		problems = append(problems, "SECRET_KEY padrão não é permitido com DATABASE_ENABLED")
	}

	if c.Auth.TokenTTL <= 0 {
		problems = append(problems, "AUTH_TOKEN_TTL deve ser positivo")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: validação falhou:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
// UsesDefaultSecret informa se os tokens estão sendo assinados com o segredo de desenvolvimento
func (c *Config) UsesDefaultSecret() bool {
	return c.Auth.SecretKey == DefaultSecretKey
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("config: nenhum arquivo .env encontrado")
}
