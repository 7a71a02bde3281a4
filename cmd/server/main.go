package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rpsarena/internal/advisor"
	"rpsarena/internal/cluster"
	"rpsarena/internal/config"
	"rpsarena/internal/network"
	"rpsarena/internal/session"
)

func main() {
	// O .env é conveniência de desenvolvimento (guarda a GEMINI_API_KEY);
	// em produção as variáveis vêm do ambiente e o arquivo não existe.
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log.Info().Int("port", cfg.Server.Port).
		Dur("start_delay", cfg.Server.StartDelay).
		Dur("cleanup_delay", cfg.Server.CleanupDelay).
		Msg("Configuration loaded")

	// O provedor externo só existe com credencial; sem ela o advisor
	// responde com a análise de padrões local, que é sempre suficiente.
	var provider advisor.Provider
	if cfg.Advisor.APIKey != "" {
		provider = advisor.NewGeminiProvider(cfg.Advisor.APIKey, cfg.Advisor.Model, cfg.Advisor.Timeout)
		log.Info().Str("model", cfg.Advisor.Model).Msg("External advisory provider enabled")
	} else {
		log.Warn().Msg("Advisory API key not configured, recommendations will use fallback pattern analysis")
	}
	advisorService := advisor.NewService(provider)

	gameHandler := session.NewGameHandler(advisorService, cfg.Server.StartDelay, cfg.Server.CleanupDelay)
	server := network.NewServer(gameHandler)

	http.HandleFunc("/health", cluster.NewHealthHandler())

	if cfg.Consul.Addr != "" {
		if err := cluster.RegisterService(cfg.Consul.ServiceName, cfg.Server.Port, cfg.Consul.Addr); err != nil {
			log.Fatal().Err(err).Msg("Failed to register service in Consul")
		}
	}

	address := fmt.Sprintf("0.0.0.0:%d", cfg.Server.Port)
	if err := server.Listen(address); err != nil {
		log.Fatal().Err(err).Msg("Network server failed")
	}
}
