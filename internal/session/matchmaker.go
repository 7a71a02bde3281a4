package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Matchmaker pareia jogadores anônimos dois a dois. Ele é o dono exclusivo
// do WaitingSlot: em qualquer instante há 0 ou 1 jogador aguardando,
// processo inteiro. Não existe fila além disso.
type Matchmaker struct {
	mu      sync.Mutex
	waiting *PlayerSession

	registry     *Registry
	startDelay   time.Duration
	cleanupDelay time.Duration
}

func NewMatchmaker(registry *Registry, startDelay, cleanupDelay time.Duration) *Matchmaker {
	return &Matchmaker{
		registry:     registry,
		startDelay:   startDelay,
		cleanupDelay: cleanupDelay,
	}
}

// Join coloca o jogador no slot de espera ou, se o slot já estiver ocupado,
// esvazia o slot e cria a sala com [quem esperava, quem chegou], nessa ordem.
// Retorna nil quando o jogador ficou aguardando. A leitura-e-limpeza do slot
// e a inserção na tabela de sessões acontecem sob o mesmo lock, então dois
// Join simultâneos nunca pareiam com o mesmo oponente.
func (m *Matchmaker) Join(s *PlayerSession) *GameRoom {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.waiting == nil || m.waiting == s {
		m.waiting = s
		log.Info().Str("client", s.Client.ID()).Str("name", s.Name).
			Msg("Player is waiting for an opponent")
		return nil
	}

	other := m.waiting
	m.waiting = nil

	room := newGameRoom(other, s, m.registry, m.startDelay, m.cleanupDelay)
	token := m.registry.Register(room)

	log.Info().Str("room", token).Str("player1", other.Name).Str("player2", s.Name).
		Msg("Match found")
	return room
}

// CancelWaiting limpa o slot se (e somente se) ele estiver ocupado por esse
// jogador. É seguro chamar em qualquer corrida de desconexão: slot vazio ou
// ocupado por outro jogador é um no-op.
func (m *Matchmaker) CancelWaiting(s *PlayerSession) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.waiting == s {
		m.waiting = nil
		log.Info().Str("client", s.Client.ID()).Msg("Player left the waiting slot")
	}
}
