package network

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Server é a estrutura principal do servidor de rede. Ele gerencia um Hub.
type Server struct {
	hub *Hub
}

// upgrader armazena as configurações para promover uma conexão HTTP para WebSocket.
var upgrader = websocket.Upgrader{
	// CheckOrigin permite controlar quais domínios podem se conectar.
	// Os jogadores são anônimos, então qualquer origem é aceita.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// NewServer aceita um EventHandler e o injeta no Hub.
// Este é o ponto de injeção da lógica do jogo.
func NewServer(handler EventHandler) *Server {
	return &Server{
		hub: NewHub(handler),
	}
}

// wsHandler lida com a requisição HTTP e a promove para uma conexão WebSocket.
func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("Websocket upgrade failed")
		return
	}

	client := newClient(conn, s.hub)

	// Registra o novo cliente no Hub e inicia as goroutines de leitura e escrita.
	client.hub.register <- client
	go client.writeLoop()
	go client.readLoop()
}

// Listen inicia o Hub, configura a rota "/ws" e serve HTTP. É bloqueante.
// Outros handlers registrados no mux padrão (como /health) são servidos
// pelo mesmo listener.
func (s *Server) Listen(address string) error {
	go s.hub.Run()

	http.HandleFunc("/ws", s.wsHandler)

	log.Info().Str("address", address).Msg("Websocket server listening on /ws")
	return http.ListenAndServe(address, nil)
}
