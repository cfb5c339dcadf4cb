package config

import (
	"errors"
	"os"
	"strconv"
)

// Config concentra toda a configuração lida do ambiente (.env carregado
// no main). Valores monetários em centavos.
type Config struct {
	DatabaseURL          string
	SessionSecret        string
	Port                 string
	APIBaseURL           string
	APIKey               string
	CidadeAtendida       string
	TaxaEntregaCentavos  int64
	PixExpiracaoSegundos int
}

// Load monta a configuração a partir das variáveis de ambiente, aplicando
// os padrões da loja quando a variável não existe.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		SessionSecret:        os.Getenv("SESSION_SECRET"),
		Port:                 getEnv("PORT", "8080"),
		APIBaseURL:           os.Getenv("API_BASE_URL"),
		APIKey:               os.Getenv("API_KEY"),
		CidadeAtendida:       getEnv("CIDADE_ATENDIDA", "Campina Grande"),
		TaxaEntregaCentavos:  getEnvInt64("TAXA_ENTREGA_CENTAVOS", 500),
		PixExpiracaoSegundos: int(getEnvInt64("PIX_EXPIRACAO_SEGUNDOS", 300)),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL não encontrada no ambiente")
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET não encontrada no ambiente")
	}
	if cfg.APIBaseURL == "" {
		return nil, errors.New("API_BASE_URL não encontrada no ambiente")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
