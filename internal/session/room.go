package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"rpsarena/internal/game"
	"rpsarena/internal/session/message"
)

// Uma partida tem sempre 7 rodadas: melhor-de-7 com placar corrido.
const totalRounds = 7

const (
	phaseAwaitingChoices = "awaiting_choices" // A sala espera as duas jogadas da rodada.
	phaseFinished        = "finished"         // A rodada 7 foi resolvida; só falta a limpeza.
)

// roomPlayer é o registro de um jogador dentro da sala: a sessão, a jogada
// pendente da rodada atual (vazia enquanto não jogou) e o placar corrido.
type roomPlayer struct {
	session *PlayerSession
	choice  game.Choice
	score   int
}

// GameRoom é uma sessão viva de dois jogadores. Todo o estado de rodada é
// protegido pelo mutex da própria sala: a checagem "os dois já jogaram?" e o
// disparo da resolução acontecem na mesma seção crítica, então a resolução
// dispara exatamente uma vez mesmo com as duas jogadas chegando juntas.
// Salas diferentes não compartilham lock e resolvem em paralelo.
type GameRoom struct {
	token string

	mu      sync.Mutex
	players [2]*roomPlayer
	round   int
	phase   string

	// closed marca a sala desmontada (desconexão ou limpeza). Os timers
	// re-checam essa flag ao disparar, porque Stop() não garante nada se o
	// timer já estava em voo.
	closed bool

	startTimer   *time.Timer
	cleanupTimer *time.Timer

	registry     *Registry
	startDelay   time.Duration
	cleanupDelay time.Duration
}

func newGameRoom(p1, p2 *PlayerSession, registry *Registry, startDelay, cleanupDelay time.Duration) *GameRoom {
	return &GameRoom{
		players: [2]*roomPlayer{
			{session: p1},
			{session: p2},
		},
		round:        1,
		phase:        phaseAwaitingChoices,
		registry:     registry,
		startDelay:   startDelay,
		cleanupDelay: cleanupDelay,
	}
}

// Token retorna o identificador da sala. É gravado uma única vez pelo
// Registry antes da sala ser compartilhada.
func (r *GameRoom) Token() string {
	return r.token
}

// Start anuncia a sala para os dois jogadores e agenda o GAME_START.
// O atraso entre JOINED e GAME_START é puro arejamento de UX (dá tempo dos
// clientes trocarem de tela); o timer pertence à sala e é cancelado se ela
// for desmontada durante a espera.
func (r *GameRoom) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.players {
		p.session.State = stateInMatch
		p.session.CurrentRoom = r
		p.session.notify(message.CreateJoined(r.token))
	}

	r.startTimer = time.AfterFunc(r.startDelay, r.announceStart)
}

func (r *GameRoom) announceStart() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	r.players[0].session.notify(message.CreateGameStart(r.players[1].session.Name))
	r.players[1].session.notify(message.CreateGameStart(r.players[0].session.Name))
	log.Debug().Str("room", r.token).Msg("Match announced to both players")
}

// SubmitChoice registra a jogada de um participante na rodada atual.
// Entradas velhas ou inválidas (sala encerrada, não-membro, jogada fora do
// vocabulário) são ignoradas em silêncio; reenviar antes da resolução apenas
// substitui a jogada pendente.
func (r *GameRoom) SubmitChoice(clientID string, rawChoice string) {
	choice, ok := game.ParseChoice(rawChoice)
	if !ok {
		log.Debug().Str("room", r.token).Str("choice", rawChoice).Msg("Ignoring invalid choice")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.phase != phaseAwaitingChoices {
		return
	}

	me := r.memberLocked(clientID)
	if me == nil {
		return
	}
	me.choice = choice

	// Assim que as duas jogadas existem, a rodada resolve. Ainda estamos
	// dentro do lock, então uma jogada atrasada do oponente não dispara
	// uma segunda resolução.
	if r.players[0].choice != "" && r.players[1].choice != "" {
		r.resolveRoundLocked()
	}
}

// opponentName devolve o nome do outro jogador na perspectiva do handle
// informado, ou vazio se o handle não pertence à sala. O array de jogadores
// e as sessões são imutáveis depois da criação, então não precisa de lock.
func (r *GameRoom) opponentName(clientID string) string {
	for i, p := range r.players {
		if p.session.Client.ID() == clientID {
			return r.players[1-i].session.Name
		}
	}
	return ""
}

func (r *GameRoom) memberLocked(clientID string) *roomPlayer {
	for _, p := range r.players {
		if p.session.Client.ID() == clientID {
			return p
		}
	}
	return nil
}

// resolveRoundLocked compara as jogadas, atualiza o placar e notifica cada
// jogador na sua própria perspectiva. Chamada sempre com o lock da sala.
func (r *GameRoom) resolveRoundLocked() {
	a, b := r.players[0], r.players[1]

	resultA := game.DetermineWinner(a.choice, b.choice)
	switch resultA {
	case game.ResultWin:
		a.score++
	case game.ResultLose:
		b.score++
	}

	a.session.notify(message.CreateRoundResult(message.RoundResultPayload{
		Round:          r.round,
		Result:         resultA,
		YourChoice:     a.choice,
		OpponentChoice: b.choice,
		YourScore:      a.score,
		OpponentScore:  b.score,
	}))
	b.session.notify(message.CreateRoundResult(message.RoundResultPayload{
		Round:          r.round,
		Result:         resultA.Mirror(),
		YourChoice:     b.choice,
		OpponentChoice: a.choice,
		YourScore:      b.score,
		OpponentScore:  a.score,
	}))

	log.Info().Str("room", r.token).Int("round", r.round).
		Str("result", string(resultA)).Msg("Round resolved")

	a.choice, b.choice = "", ""

	if r.round >= totalRounds {
		r.finishLocked()
		return
	}
	r.round++
}

// finishLocked encerra a partida depois da rodada 7: placar maior vence,
// placares iguais empatam para os dois. A sala continua na tabela de sessões
// por um tempo de carência para que nenhuma mensagem atrasada referencie uma
// sala que já não existe; a remoção é agendada, não depende de mais eventos.
func (r *GameRoom) finishLocked() {
	r.phase = phaseFinished

	a, b := r.players[0], r.players[1]

	finalA := game.ResultTie
	if a.score > b.score {
		finalA = game.ResultWin
	} else if a.score < b.score {
		finalA = game.ResultLose
	}

	a.session.notify(message.CreateGameOver(message.GameOverPayload{
		Result:        finalA,
		YourScore:     a.score,
		OpponentScore: b.score,
		You:           a.session.Name,
		Opponent:      b.session.Name,
	}))
	b.session.notify(message.CreateGameOver(message.GameOverPayload{
		Result:        finalA.Mirror(),
		YourScore:     b.score,
		OpponentScore: a.score,
		You:           b.session.Name,
		Opponent:      a.session.Name,
	}))

	log.Info().Str("room", r.token).Int("score1", a.score).Int("score2", b.score).
		Msg("Game over")

	// Os jogadores voltam a ser elegíveis para novas partidas.
	for _, p := range r.players {
		p.session.State = stateConnected
		p.session.CurrentRoom = nil
	}

	r.cleanupTimer = time.AfterFunc(r.cleanupDelay, r.cleanup)
}

func (r *GameRoom) cleanup() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	if r.registry.Remove(r.token) {
		log.Debug().Str("room", r.token).Msg("Finished room removed from the live table")
	}
}

// HandleDisconnect desmonta a sala porque um participante caiu. O outro
// jogador recebe OPPONENT_DISCONNECTED e a sala sai da tabela imediatamente,
// sem carência e sem cálculo de resultado final: a partida termina de forma
// anormal. Se a partida já tinha terminado (desconexão durante a carência),
// ninguém é notificado; a sala só é removida mais cedo.
func (r *GameRoom) HandleDisconnect(leaving *PlayerSession) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true

	if r.startTimer != nil {
		r.startTimer.Stop()
	}
	if r.cleanupTimer != nil {
		r.cleanupTimer.Stop()
	}

	alreadyFinished := r.phase == phaseFinished

	var other *PlayerSession
	for _, p := range r.players {
		if p.session != leaving {
			other = p.session
		}
	}

	if other != nil && !alreadyFinished {
		other.notify(message.CreateOpponentDisconnected())
		other.State = stateConnected
		other.CurrentRoom = nil
	}
	r.mu.Unlock()

	r.registry.Remove(r.token)
	log.Info().Str("room", r.token).Bool("finished", alreadyFinished).
		Msg("Room torn down after disconnect")
}
