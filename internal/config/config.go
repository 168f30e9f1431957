package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Storage struct {
		Path string `yaml:"path"` // Путь к файлу локального хранилища (SQLite)
		Seed bool   `yaml:"seed"` // Заполнить демо-данными при первом запуске
	} `yaml:"storage"`

	Chain struct {
		PayDelayMs    int `yaml:"pay_delay_ms"`    // Задержка симуляции платежа
		CancelDelayMs int `yaml:"cancel_delay_ms"` // Задержка симуляции отмены
	} `yaml:"chain"`

	Workers struct {
		ExpirySweepHours int `yaml:"expiry_sweep_hours"`
	} `yaml:"workers"`
}

var AppConfig *Config

func LoadConfig() {
	// .env, если есть - переменные окружения имеют приоритет над config.yaml
	_ = godotenv.Load()

	var cfg Config

	storagePath := os.Getenv("JOBSFI_STORAGE_PATH")
	if storagePath == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	// Режим переменных окружения (тесты, контейнеры)
	cfg.Storage.Path = storagePath
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Storage.Seed = os.Getenv("JOBSFI_SEED") == "true"
	cfg.Chain.PayDelayMs, _ = strconv.Atoi(os.Getenv("JOBSFI_PAY_DELAY_MS"))
	cfg.Chain.CancelDelayMs, _ = strconv.Atoi(os.Getenv("JOBSFI_CANCEL_DELAY_MS"))

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "data/jobsfi.db"
	}
	if cfg.Workers.ExpirySweepHours == 0 {
		cfg.Workers.ExpirySweepHours = 6
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
