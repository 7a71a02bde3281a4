// Pacote config carrega a configuração do processo com viper: defaults,
// arquivo config.yaml opcional e variáveis de ambiente com prefixo RPSARENA_.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa toda a configuração da aplicação.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Consul  ConsulConfig  `mapstructure:"consul"`
	Advisor AdvisorConfig `mapstructure:"advisor"`
}

// ServerConfig configura o servidor de partidas. Os dois atrasos são ritmo
// de UX, não semântica: zero é um valor válido para ambos.
type ServerConfig struct {
	Port int `mapstructure:"port"`

	// Atraso entre o JOINED e o GAME_START, para os clientes terminarem a
	// transição de tela.
	StartDelay time.Duration `mapstructure:"start_delay"`

	// Carência entre o fim da partida e a remoção da sala da tabela de
	// sessões, para mensagens atrasadas não encontrarem uma sala inexistente.
	CleanupDelay time.Duration `mapstructure:"cleanup_delay"`
}

// ConsulConfig configura o registro no Consul. Addr vazio desliga o registro.
type ConsulConfig struct {
	Addr        string `mapstructure:"addr"`
	ServiceName string `mapstructure:"service_name"`
}

// AdvisorConfig configura o provedor externo de recomendações. APIKey vazia
// significa só o fallback heurístico local.
type AdvisorConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load monta a configuração: defaults, depois config.yaml (se existir),
// depois ambiente. GEMINI_API_KEY é aceita diretamente por compatibilidade
// com o .env usado em desenvolvimento.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.start_delay", time.Second)
	v.SetDefault("server.cleanup_delay", 5*time.Second)
	v.SetDefault("consul.addr", "")
	v.SetDefault("consul.service_name", "rpsarena")
	v.SetDefault("advisor.api_key", "")
	v.SetDefault("advisor.model", "gemini-1.5-flash")
	v.SetDefault("advisor.timeout", 10*time.Second)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// Sem arquivo tudo bem; qualquer outro erro de leitura é real.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix("RPSARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Advisor.APIKey == "" {
		cfg.Advisor.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	return &cfg, nil
}
