package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env           string
	Server        ServerConfig
	Database      DatabaseConfig
	JWT           JWTConfig
	PasswordReset PasswordResetConfig
	SMTP          SMTPConfig
	Admin         AdminConfig
	Logging       LoggingConfig
	CORS          CORSConfig
	I18n          I18nConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	BaseURL         string // URL base da API para construir URIs RFC 7807
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
	AutoMigrate bool
}

type JWTConfig struct {
	Secret      string
	Issuer      string
	Audience    string
	AccessTTL   time.Duration
	RefreshDays int
}

// RefreshTTL retorna a validade do refresh token
func (j JWTConfig) RefreshTTL() time.Duration {
	return time.Duration(j.RefreshDays) * 24 * time.Hour
}

type PasswordResetConfig struct {
	TTL      time.Duration
	ResetURL string // o token é anexado como query string ?token=
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Enabled indica se o envio de emails via SMTP está configurado
func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}

// AdminConfig define o administrador criado na inicialização (opcional)
type AdminConfig struct {
	Email    string
	Password string
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// Origins retorna a lista de origens separadas por vírgula
func (c CORSConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

type I18nConfig struct {
	LocalesDir      string // vazio usa os arquivos embutidos
	DefaultLanguage string
}

// Load carrega as configurações do arquivo .env (opcional) e das variáveis de ambiente
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:            v.GetString("PORT"),
			Host:            v.GetString("HOST"),
			BaseURL:         v.GetString("API_BASE_URL"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		JWT: JWTConfig{
			Secret:      v.GetString("JWT_SECRET"),
			Issuer:      v.GetString("JWT_ISSUER"),
			Audience:    v.GetString("JWT_AUDIENCE"),
			AccessTTL:   v.GetDuration("JWT_ACCESS_TTL"),
			RefreshDays: v.GetInt("JWT_REFRESH_DAYS"),
		},
		PasswordReset: PasswordResetConfig{
			TTL:      v.GetDuration("PASSWORD_RESET_TTL"),
			ResetURL: v.GetString("PASSWORD_RESET_URL"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			User:     v.GetString("SMTP_USER"),
			Password: v.GetString("SMTP_PASS"),
			From:     v.GetString("SMTP_FROM"),
		},
		Admin: AdminConfig{
			Email:    v.GetString("ADMIN_EMAIL"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		I18n: I18nConfig{
			LocalesDir:      v.GetString("I18N_LOCALES_DIR"),
			DefaultLanguage: v.GetString("I18N_DEFAULT_LANGUAGE"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "hiresphere")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("JWT_ISSUER", "hiresphere-api")
	v.SetDefault("JWT_AUDIENCE", "hiresphere-clients")
	v.SetDefault("JWT_ACCESS_TTL", "15m")
	v.SetDefault("JWT_REFRESH_DAYS", 7)

	v.SetDefault("PASSWORD_RESET_TTL", "1h")
	v.SetDefault("PASSWORD_RESET_URL", "http://localhost:3000/reset-password")

	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM", "no-reply@hiresphere.local")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("I18N_LOCALES_DIR", "")
	v.SetDefault("I18N_DEFAULT_LANGUAGE", "en")
}

// IsProduction indica se a aplicação roda em produção
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Validate verifica configurações obrigatórias
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.IsProduction() && len(c.JWT.Secret) < 32 {
		return errors.New("JWT_SECRET must have at least 32 characters in production")
	}
	if c.JWT.AccessTTL <= 0 {
		return errors.New("JWT_ACCESS_TTL must be positive")
	}
	if c.JWT.RefreshDays <= 0 {
		return errors.New("JWT_REFRESH_DAYS must be positive")
	}
	if c.PasswordReset.TTL <= 0 {
		return errors.New("PASSWORD_RESET_TTL must be positive")
	}
	return nil
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
