package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string            `yaml:"env" env:"ENV" env-default:"local"`
	DSN         string            `yaml:"dsn" env:"DSN" env-required:"true"`
	HTTP        HTTPConfig        `yaml:"http"`
	Admin       AdminConfig       `yaml:"admin"`
	FileStorage FileStorageConfig `yaml:"file_storage"`
	Redis       RedisConfig       `yaml:"redis"`
	SMTP        SMTPConfig        `yaml:"smtp"`
	WhatsApp    WhatsAppConfig    `yaml:"whatsapp"`
}

type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type AdminConfig struct {
	Username string        `yaml:"username" env:"ADMIN_USERNAME" env-default:"admin"`
	Password string        `yaml:"password" env:"ADMIN_PASSWORD" env-required:"true"`
	Token    string        `yaml:"token_secret" env:"ADMIN_TOKEN_SECRET" env-required:"true"`
	TokenTTL time.Duration `yaml:"token_ttl" env:"ADMIN_TOKEN_TTL" env-default:"12h"`
}

type FileStorageConfig struct {
	BaseDir string `yaml:"base_dir" env:"FILE_STORAGE_DIR" env-default:"./media"`
	BaseURL string `yaml:"base_url" env:"FILE_STORAGE_URL" env-default:"/media"`
	MaxSize int64  `yaml:"max_size" env:"FILE_STORAGE_MAX_SIZE" env-default:"10485760"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type SMTPConfig struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from" env:"SMTP_FROM"`
	// Operator inbox that receives contact notifications.
	NotifyTo string `yaml:"notify_to" env:"SMTP_NOTIFY_TO" env-default:"info@sundarmarbles.com"`
	Workers  int    `yaml:"workers" env:"SMTP_WORKERS" env-default:"2"`
	Queue    int    `yaml:"queue" env:"SMTP_QUEUE" env-default:"64"`
}

type WhatsAppConfig struct {
	Number string `yaml:"number" env:"WHATSAPP_NUMBER" env-default:"923006641727"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
