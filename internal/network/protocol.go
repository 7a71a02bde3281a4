package network

import (
	"encoding/json"
)

// Message é o envelope padrão para toda a comunicação cliente <-> servidor.
// O tipo serve para roteamento e o payload fica em JSON bruto para que cada
// handler decodifique apenas o que conhece.
type Message struct {
	Type    string          `json:"type"`    // Ex: "JOIN", "PLAY_CHOICE", "ROUND_RESULT"
	Payload json.RawMessage `json:"payload"` // Dados específicos do evento.
}

// MaxMessageSize limita o tamanho de uma mensagem vinda do cliente.
// Um pedido de recomendação carrega no máximo 7 rodadas de histórico,
// então qualquer coisa perto desse limite é comportamento suspeito.
const MaxMessageSize = 64 * 1024
