package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultLogLevel  = "info"
	defaultEnv       = EnvLocal
	defaultDirName   = "cykel"
	defaultVaultFile = "data.cykel"
)

type Config struct {
	Env       string `mapstructure:"app_env"`
	LogLevel  string `mapstructure:"log_level"`
	DataDir   string `mapstructure:"data_dir"`
	VaultPath string `mapstructure:"vault_path"`
}

// MustLoad загружает конфигурацию приложения из окружения.
// Путь к хранилищу по умолчанию — файл в пользовательской директории
// данных приложения; директория создается при отсутствии.
func MustLoad() *Config {
	// Загружаем .env файл если существует
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)

	dataDir := viper.GetString("DATA_DIR")
	if dataDir == "" {
		dataDir = defaultDataDir()
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		fmt.Printf("Ошибка создания директории данных: %v\n", err)
	}

	config := &Config{
		Env:       viper.GetString("APP_ENV"),
		LogLevel:  viper.GetString("LOG_LEVEL"),
		DataDir:   dataDir,
		VaultPath: filepath.Join(dataDir, defaultVaultFile),
	}

	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}

	return config
}

// defaultDataDir возвращает пользовательскую директорию данных
// приложения: $XDG_DATA_HOME/cykel либо ~/.local/share/cykel.
func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, defaultDirName)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".local", "share", defaultDirName)
}

func (c *Config) validate() error {
	if c.VaultPath == "" {
		return fmt.Errorf("vault_path не может быть пустым")
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
