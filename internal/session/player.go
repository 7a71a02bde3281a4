package session

import (
	"github.com/rs/zerolog/log"

	"rpsarena/internal/network"
)

// Constantes de estado da sessão para evitar erros de digitação.
const (
	stateConnected = "connected" // Conectou mas ainda não pediu partida.
	stateInQueue   = "in_queue"  // Ocupando o WaitingSlot do matchmaker.
	stateInMatch   = "in_match"  // Dentro de uma GameRoom ativa.
)

// Sender é o que a sessão precisa saber do transporte: um handle opaco e um
// destino de mensagens. Desacoplar do *network.Client concreto permite testar
// todo o motor sem abrir uma conexão WebSocket.
type Sender interface {
	ID() string
	Send() chan<- network.Message
}

// PlayerSession representa um jogador único e conectado ao servidor.
// O nome de exibição é texto livre, não é único e não é validado.
//
// CurrentRoom é a sala que o jogador ocupa agora, e é o que define
// pertencimento para a varredura de desconexão: o fim da partida devolve o
// jogador ao lobby (CurrentRoom nil) mesmo com a sala ainda na tabela
// durante a carência. Todos os acessos acontecem na goroutine do Hub.
type PlayerSession struct {
	Client Sender
	Name   string

	State       string
	CurrentRoom *GameRoom
}

// NewPlayerSession cria e inicializa uma nova sessão de jogador.
func NewPlayerSession(client Sender) *PlayerSession {
	return &PlayerSession{
		Client: client,
		State:  stateConnected,
	}
}

// deliver entrega um evento a um destino sem nunca bloquear o chamador.
// Se o buffer de saída do cliente estiver cheio, a conexão já está
// efetivamente morta e o evento é descartado; segurar o lock de uma sala
// esperando um cliente lento seria bem pior.
func deliver(to Sender, msg network.Message) {
	select {
	case to.Send() <- msg:
	default:
		log.Warn().Str("client", to.ID()).Str("event", msg.Type).
			Msg("Dropping event: client send buffer is full")
	}
}

// notify entrega um evento ao jogador.
func (p *PlayerSession) notify(msg network.Message) {
	deliver(p.Client, msg)
}
