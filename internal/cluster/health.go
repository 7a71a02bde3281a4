package cluster

import (
	"fmt"
	"net/http"
)

// NewHealthHandler retorna um http.HandlerFunc genérico de "liveness check".
// Ele apenas confirma que o processo está rodando e o servidor HTTP responde;
// é o check que o Consul consulta.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Service is alive.")
	}
}
