package config

import (
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress    = ":8080"
	defaultDBPort        = 5432
	defaultMigrations    = "migrations"
	defaultLookupTimeout = 3 * time.Second
	defaultConcurrency   = 8
	defaultTimezone      = "America/Sao_Paulo"
	defaultAddressAPIURL = "http://localhost:3000"
	defaultPublicCEPURL  = "https://viacep.com.br"
)

type Config struct {
	Env     string
	DB      DB
	Server  Server
	Logger  Logger
	Crypto  Crypto
	Address Address
	Display Display
}

type DB struct {
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	SSL        bool
	Migrations string
}

type Server struct {
	RunAddress string
}

// Logger.LogLevel пустой - уровень выбирается по APP_ENV.
type Logger struct {
	LogLevel string
}

// Crypto хранит ключ и IV для расшифровки полей адреса.
// Длины не проверяются здесь: это делает crypto.NewFieldCodec при старте.
type Crypto struct {
	Key []byte
	IV  []byte
}

type Address struct {
	InternalURL   string
	PublicURL     string
	LookupTimeout time.Duration
	Concurrency   int
}

type Display struct {
	Timezone string
}

// MustLoad загружает конфигурацию из .env (если есть) и переменных окружения.
func MustLoad() *Config {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("failed to load %s: %v", envPath, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("log_level", "")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", defaultDBPort)
	v.SetDefault("db_ssl", false)
	v.SetDefault("migrations_path", defaultMigrations)
	v.SetDefault("address_api_url", defaultAddressAPIURL)
	v.SetDefault("public_cep_url", defaultPublicCEPURL)
	v.SetDefault("address_lookup_timeout", defaultLookupTimeout)
	v.SetDefault("resolve_concurrency", defaultConcurrency)
	v.SetDefault("display_timezone", defaultTimezone)
}

func fromViper(v *viper.Viper) *Config {
	concurrency := v.GetInt("resolve_concurrency")
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	timeout := v.GetDuration("address_lookup_timeout")
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}

	return &Config{
		Env: v.GetString("app_env"),
		DB: DB{
			Host:       v.GetString("db_host"),
			Port:       v.GetInt("db_port"),
			User:       v.GetString("db_user"),
			Password:   v.GetString("db_password"),
			Name:       v.GetString("db_database"),
			SSL:        v.GetBool("db_ssl"),
			Migrations: v.GetString("migrations_path"),
		},
		Server: Server{RunAddress: v.GetString("run_address")},
		Logger: Logger{LogLevel: v.GetString("log_level")},
		Crypto: Crypto{
			Key: []byte(v.GetString("encryption_key")),
			IV:  []byte(v.GetString("encryption_iv")),
		},
		Address: Address{
			InternalURL:   v.GetString("address_api_url"),
			PublicURL:     v.GetString("public_cep_url"),
			LookupTimeout: timeout,
			Concurrency:   concurrency,
		},
		Display: Display{Timezone: v.GetString("display_timezone")},
	}
}

func (d DB) sslMode() string {
	if d.SSL {
		return "require"
	}
	return "disable"
}

// URL возвращает postgres:// адрес для pgxpool и golang-migrate.
func (d DB) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + d.sslMode(),
	}
	return u.String()
}

// Location возвращает часовой пояс для отображения времени, UTC при ошибке.
func (d Display) Location() *time.Location {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
