package session

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"rpsarena/internal/advisor"
	"rpsarena/internal/network"
	"rpsarena/internal/session/message"
)

// Tipos de comando aceitos do cliente.
const (
	cmdJoin           = "JOIN"
	cmdLeaveQueue     = "LEAVE_QUEUE"
	cmdPlayChoice     = "PLAY_CHOICE"
	cmdRecommendation = "GET_RECOMMENDATION"
)

// CommandHandlerFunc define a assinatura das funções que lidam com comandos.
// Elas recebem o contexto da sessão e o payload bruto da mensagem.
type CommandHandlerFunc func(h *GameHandler, session *PlayerSession, payload json.RawMessage)

// GameHandler é o registro de participantes e o despachante de eventos.
// Ele roda inteiro na goroutine do Hub: o mapa de sessões nunca é tocado
// fora dela. Matchmaker, Registry e salas têm seus próprios locks porque
// timers e o advisor trabalham em outras goroutines.
type GameHandler struct {
	sessions   map[*network.Client]*PlayerSession
	matchmaker *Matchmaker
	registry   *Registry
	advisor    *advisor.Service

	// Um roteador por estado do jogador, para que um comando de partida
	// vindo de quem está no lobby seja simplesmente ignorado.
	lobbyRouter map[string]CommandHandlerFunc
	queueRouter map[string]CommandHandlerFunc
	matchRouter map[string]CommandHandlerFunc
}

// NewGameHandler monta o handler com os roteadores preenchidos. Os atrasos
// (JOINED -> GAME_START e fim de jogo -> remoção da sala) são parâmetros de
// configuração, não constantes com significado.
func NewGameHandler(adv *advisor.Service, startDelay, cleanupDelay time.Duration) *GameHandler {
	registry := NewRegistry()
	h := &GameHandler{
		sessions:    make(map[*network.Client]*PlayerSession),
		matchmaker:  NewMatchmaker(registry, startDelay, cleanupDelay),
		registry:    registry,
		advisor:     adv,
		lobbyRouter: make(map[string]CommandHandlerFunc),
		queueRouter: make(map[string]CommandHandlerFunc),
		matchRouter: make(map[string]CommandHandlerFunc),
	}
	h.registerHandlers()
	return h
}

func (h *GameHandler) registerHandlers() {
	h.lobbyRouter[cmdJoin] = handleJoin

	h.queueRouter[cmdLeaveQueue] = handleLeaveQueue

	h.matchRouter[cmdPlayChoice] = handlePlayChoice
	h.matchRouter[cmdRecommendation] = handleRecommendation
}

// --- Implementação da interface network.EventHandler ---

// OnConnect é chamado pela goroutine do network.Hub. É seguro modificar o
// mapa de sessões aqui.
func (h *GameHandler) OnConnect(c *network.Client) {
	session := NewPlayerSession(c)
	h.sessions[c] = session
	log.Info().Str("client", c.ID()).Int("sessions", len(h.sessions)).Msg("Session created")

	session.notify(message.CreateWelcome())
}

// OnDisconnect limpa os dois recursos compartilhados de forma independente:
// o WaitingSlot (se era esse jogador que esperava) e a tabela de sessões
// vivas (se ele estava em uma sala). Uma desconexão de quem não estava em
// nenhum dos dois é um no-op completo.
func (h *GameHandler) OnDisconnect(c *network.Client) {
	session, ok := h.sessions[c]
	if !ok {
		return
	}

	h.matchmaker.CancelWaiting(session)

	if room := h.registry.FindByClient(c.ID()); room != nil {
		room.HandleDisconnect(session)
	}

	delete(h.sessions, c)
	log.Info().Str("client", c.ID()).Int("sessions", len(h.sessions)).Msg("Session removed")
}

// OnMessage seleciona o roteador pelo estado atual do jogador e despacha.
// Comando desconhecido para o estado não é erro: mensagens velhas de clientes
// são esperadas e nunca derrubam nada.
func (h *GameHandler) OnMessage(c *network.Client, msg network.Message) {
	session, ok := h.sessions[c]
	if !ok {
		return
	}

	var router map[string]CommandHandlerFunc
	switch session.State {
	case stateConnected:
		router = h.lobbyRouter
	case stateInQueue:
		router = h.queueRouter
	case stateInMatch:
		router = h.matchRouter
	default:
		return
	}

	handler, found := router[msg.Type]
	if !found {
		log.Debug().Str("client", c.ID()).Str("state", session.State).
			Str("type", msg.Type).Msg("Ignoring command for current state")
		return
	}

	handler(h, session, msg.Payload)
}
