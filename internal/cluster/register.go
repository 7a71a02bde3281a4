// Pacote cluster cuida da presença do serviço na infraestrutura: registro no
// Consul e o endpoint de health check que o agente consulta.
package cluster

import (
	"fmt"
	"os"

	consul "github.com/hashicorp/consul/api"
	"github.com/rs/zerolog/log"
)

// RegisterService registra este processo no Consul com um health check HTTP.
// O registro é opcional: o servidor funciona sozinho, o Consul só entra
// quando um endereço é configurado.
func RegisterService(serviceName string, servicePort int, consulAddr string) error {
	config := consul.DefaultConfig()
	config.Address = consulAddr

	consulClient, err := consul.NewClient(config)
	if err != nil {
		return fmt.Errorf("create consul client: %w", err)
	}

	// O hostname cria um ID de serviço único por instância.
	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		hostname, _ = os.Hostname()
	}
	serviceID := fmt.Sprintf("%s-%s", serviceName, hostname)

	registration := &consul.AgentServiceRegistration{
		ID:   serviceID,
		Name: serviceName,
		Port: servicePort,

		Check: &consul.AgentServiceCheck{
			// O agente resolve o hostname do contêiner via DNS da rede.
			HTTP:     fmt.Sprintf("http://%s:%d/health", hostname, servicePort),
			Timeout:  "5s",
			Interval: "10s",
			// Desregistra sozinho se a instância ficar crítica por muito tempo.
			DeregisterCriticalServiceAfter: "1m",
		},
	}

	if err := consulClient.Agent().ServiceRegister(registration); err != nil {
		return fmt.Errorf("register service in consul: %w", err)
	}

	log.Info().Str("service", serviceName).Str("id", serviceID).
		Msg("Service registered in Consul")
	return nil
}
