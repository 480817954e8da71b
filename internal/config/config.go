package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config — полная конфигурация приложения.
// Файл config.yaml (необязательный) + переменные окружения.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Mail    MailConfig    `mapstructure:"mail"`
	Scraper ScraperConfig `mapstructure:"scraper"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type StorageConfig struct {
	Type string `mapstructure:"type"` // memory или postgres
}

type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

type ScraperConfig struct {
	QuoteAPIURL      string `mapstructure:"quote_api_url"`
	FallbackQuoteURL string `mapstructure:"fallback_quote_url"`
	ImagePageURL     string `mapstructure:"image_page_url"`
	FallbackImageURL string `mapstructure:"fallback_image_url"`
	BackgroundURL    string `mapstructure:"background_url"`
	ImageLogPath     string `mapstructure:"image_log_path"`
	Timeout          string `mapstructure:"timeout"`
}

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found")
	}
}

func GetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("environment variable %s is not set", key)
	}
	return value
}

// LoadConfig читает config.yaml (если есть) и переменные окружения
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("storage.type", "memory")
	viper.SetDefault("mail.host", "smtp.gmail.com")
	viper.SetDefault("mail.port", 587)
	viper.SetDefault("scraper.quote_api_url", "https://zenquotes.io/api/today/")
	viper.SetDefault("scraper.fallback_quote_url", "https://theysaidso.com/quote/alex-salmond-it-is-a-war-built-on-lies-that-has-fanned-the-flames-of-internation")
	viper.SetDefault("scraper.image_page_url", "https://everydaypower.com/inspirational-quotes-with-pictures/")
	viper.SetDefault("scraper.fallback_image_url", "https://quotelia.com/")
	viper.SetDefault("scraper.background_url", "https://unsplash.com/s/photos/inspirational")
	viper.SetDefault("scraper.image_log_path", "img_list.txt")
	viper.SetDefault("scraper.timeout", "10s")

	viper.AutomaticEnv()
	viper.BindEnv("mail.email", "EMAIL")
	viper.BindEnv("mail.password", "PASSWORD")
	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("server.port", "PORT")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Println("No config file found, using defaults and environment variables")
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
