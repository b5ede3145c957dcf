package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Database       DatabaseConfig
	Server         ServerConfig
	App            AppConfig
	Redis          RedisConfig
	Ledger         LedgerConfig
	Reconciliation ReconciliationConfig
	Statement      StatementConfig
}

type DatabaseConfig struct {
	Host           string `validate:"required"`
	Port           string `validate:"required"`
	User           string `validate:"required"`
	Password       string
	DBName         string `validate:"required"`
	SSLMode        string `validate:"oneof=disable require verify-ca verify-full"`
	MigrationsPath string
	MaxOpenConns   int `validate:"min=1"`
	MaxIdleConns   int `validate:"min=0"`
}

type ServerConfig struct {
	Port string `validate:"required"`
}

type AppConfig struct {
	LogLevel    string
	BatchSize   int    `validate:"min=1"`
	StoreDriver string `validate:"oneof=postgres memory"`
	CompanyName string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type LedgerConfig struct {
	// SequenceBackend selects the voucher sequence generator
	SequenceBackend string `validate:"oneof=store redis local"`
}

type ReconciliationConfig struct {
	BookBalanceMode     string `validate:"oneof=placeholder ledger"`
	BankBusinessKeyword string `validate:"required"`
	AllowEntryReuse     bool
}

type StatementConfig struct {
	MappingFile string
}

func Load() (*Config, error) {
	// A missing .env file is not an error
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "ledger_db")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BATCH_SIZE", 10000)
	v.SetDefault("STORE_DRIVER", "postgres")
	v.SetDefault("COMPANY_NAME", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LEDGER_SEQUENCE_BACKEND", "store")
	v.SetDefault("RECON_BOOK_BALANCE_MODE", "placeholder")
	v.SetDefault("RECON_BANK_BUSINESS_KEYWORD", "bank")
	v.SetDefault("RECON_ALLOW_ENTRY_REUSE", false)
	v.SetDefault("STATEMENT_MAPPING_FILE", "")

	cfg := &Config{
		Database: DatabaseConfig{
			Host:           v.GetString("DB_HOST"),
			Port:           v.GetString("DB_PORT"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASSWORD"),
			DBName:         v.GetString("DB_NAME"),
			SSLMode:        v.GetString("DB_SSLMODE"),
			MigrationsPath: v.GetString("DB_MIGRATIONS_PATH"),
			MaxOpenConns:   v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:   v.GetInt("DB_MAX_IDLE_CONNS"),
		},
		Server: ServerConfig{
			Port: v.GetString("SERVER_PORT"),
		},
		App: AppConfig{
			LogLevel:    v.GetString("LOG_LEVEL"),
			BatchSize:   v.GetInt("BATCH_SIZE"),
			StoreDriver: strings.ToLower(v.GetString("STORE_DRIVER")),
			CompanyName: v.GetString("COMPANY_NAME"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Ledger: LedgerConfig{
			SequenceBackend: strings.ToLower(v.GetString("LEDGER_SEQUENCE_BACKEND")),
		},
		Reconciliation: ReconciliationConfig{
			BookBalanceMode:     strings.ToLower(v.GetString("RECON_BOOK_BALANCE_MODE")),
			BankBusinessKeyword: v.GetString("RECON_BANK_BUSINESS_KEYWORD"),
			AllowEntryReuse:     v.GetBool("RECON_ALLOW_ENTRY_REUSE"),
		},
		Statement: StatementConfig{
			MappingFile: v.GetString("STATEMENT_MAPPING_FILE"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}
