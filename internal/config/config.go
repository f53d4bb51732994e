package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr      string
	DatabaseURL     string
	MigrationsPath  string
	DiscordBotToken string
	DefaultLocale   string
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{
		ListenAddr:      os.Getenv("LISTEN_ADDR"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		MigrationsPath:  os.Getenv("MIGRATIONS_PATH"),
		DiscordBotToken: os.Getenv("DISCORD_BOT_TOKEN"),
		DefaultLocale:   os.Getenv("DEFAULT_LOCALE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.ListenAddr) == "" {
		c.ListenAddr = ":8080"
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Valeur par défaut utile en local lorsque DATABASE_URL n'est pas fournie.
		c.DatabaseURL = "postgres://localhost:5432/clubboard?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
	}

	// DISCORD_BOT_TOKEN est optionnel: sans token, les notifications sont
	// simplement désactivées (voir cmd/server).
	return nil
}
