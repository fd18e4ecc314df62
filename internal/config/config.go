package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Auth       Auth       `yaml:"auth"`
	SMTP       SMTP       `yaml:"smtp"`
	WhatsApp   WhatsApp   `yaml:"whatsapp"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"uniqer"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Auth struct {
	Secret            string        `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL          time.Duration `yaml:"token_ttl" env-default:"720h"`
	BootstrapEmail    string        `yaml:"bootstrap_email" env:"ADMIN_EMAIL"`
	BootstrapName     string        `yaml:"bootstrap_name" env:"ADMIN_NAME" env-default:"Administrator"`
	BootstrapPassword string        `yaml:"bootstrap_password" env:"ADMIN_PASSWORD"`
}

type SMTP struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	User     string `yaml:"user" env:"SMTP_USER"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from" env:"EMAIL_FROM"`
	AdminTo  string `yaml:"admin_to" env:"ADMIN_NOTIFY_EMAIL"`
}

type WhatsApp struct {
	Token      string `yaml:"token" env:"WHATSAPP_TOKEN"`
	PhoneID    string `yaml:"phone_id" env:"WHATSAPP_PHONE_ID"`
	StaffPhone string `yaml:"staff_phone" env:"WHATSAPP_STAFF_PHONE"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
