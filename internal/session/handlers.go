package session

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"rpsarena/internal/advisor"
	"rpsarena/internal/game"
	"rpsarena/internal/session/message"
)

// handleJoin registra o nome de exibição e entrega o jogador ao matchmaker.
// O nome é texto livre: não é único, não é validado.
func handleJoin(h *GameHandler, session *PlayerSession, payload json.RawMessage) {
	var req struct {
		Name string `json:"name"`
	}
	// Payload ilegível não derruba nada; o jogador só entra sem nome.
	_ = json.Unmarshal(payload, &req)
	session.Name = req.Name

	room := h.matchmaker.Join(session)
	if room == nil {
		session.State = stateInQueue
		session.notify(message.CreateWaiting())
		return
	}

	room.Start()
}

// handleLeaveQueue desiste da espera e devolve o jogador ao lobby.
func handleLeaveQueue(h *GameHandler, session *PlayerSession, payload json.RawMessage) {
	h.matchmaker.CancelWaiting(session)
	session.State = stateConnected
}

// handlePlayChoice repassa a jogada para a sala indicada pelo token.
// Token desconhecido, sala alheia ou jogada inválida: tudo ignorado em
// silêncio, a sala faz as próprias checagens de pertencimento.
func handlePlayChoice(h *GameHandler, session *PlayerSession, payload json.RawMessage) {
	var req struct {
		Room   string `json:"room"`
		Choice string `json:"choice"`
	}
	if err := json.Unmarshal(payload, &req); err != nil {
		return
	}

	room := h.registry.Get(req.Room)
	if room == nil {
		log.Debug().Str("client", session.Client.ID()).Str("room", req.Room).
			Msg("Choice for unknown room ignored")
		return
	}

	room.SubmitChoice(session.Client.ID(), req.Choice)
}

// handleRecommendation pede uma sugestão de jogada ao advisor. O histórico
// pertence ao cliente e chega no próprio pedido; o servidor não o guarda.
// A consulta ao provedor externo pode levar segundos, então ela roda fora da
// goroutine do Hub e responde só para quem pediu.
func handleRecommendation(h *GameHandler, session *PlayerSession, payload json.RawMessage) {
	var req struct {
		Room    string              `json:"room"`
		Round   int                 `json:"round"`
		History []game.HistoryEntry `json:"history"`
	}
	if err := json.Unmarshal(payload, &req); err != nil {
		return
	}

	// O nome do oponente só serve para o prompt do provedor externo;
	// sala desconhecida não impede a resposta, o fallback não precisa dele.
	var opponentName string
	if room := h.registry.Get(req.Room); room != nil {
		opponentName = room.opponentName(session.Client.ID())
	}

	adviseReq := advisor.Request{
		History:      req.History,
		CurrentRound: req.Round,
		PlayerName:   session.Name,
		OpponentName: opponentName,
	}

	// A goroutine captura só o transporte, nunca a sessão: os campos da
	// sessão pertencem à goroutine do Hub e podem mudar com um JOIN futuro.
	client := session.Client
	go func() {
		// O jogador pode desconectar enquanto o provedor responde; nesse
		// caso o canal de envio já foi fechado e a entrega é abandonada.
		defer func() {
			if recover() != nil {
				log.Debug().Str("client", client.ID()).
					Msg("Client gone before recommendation delivery")
			}
		}()

		choice := h.advisor.Advise(context.Background(), adviseReq)
		deliver(client, message.CreateRecommendation(choice))
	}()
}
