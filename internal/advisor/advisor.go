// Pacote advisor sugere a próxima jogada de um jogador a partir do histórico
// da partida. A sugestão pode vir de um provedor externo de IA, mas o pacote
// nunca depende dele: toda falha cai no heurístico local determinístico.
package advisor

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"rpsarena/internal/game"
)

// Request agrupa tudo que uma consulta de recomendação carrega. O histórico
// está na perspectiva do jogador que pergunta.
type Request struct {
	History      []game.HistoryEntry
	CurrentRound int
	PlayerName   string
	OpponentName string
}

// Provider é a capacidade externa de sugerir jogadas. Implementações podem
// falhar à vontade (rede, credencial, resposta sem sentido): quem chama é
// obrigado a ter um fallback total.
type Provider interface {
	Suggest(ctx context.Context, req Request) (string, error)
}

// Service embrulha um Provider opcional com o fallback heurístico,
// transformando a consulta em uma função total: Advise nunca falha.
type Service struct {
	provider Provider
}

// NewService cria o serviço. Um provider nil é válido e significa
// "só o heurístico local".
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Advise devolve a sugestão para a próxima jogada, ou vazio quando ainda não
// há sinal suficiente. Qualquer problema com o provedor externo (timeout,
// credencial ruim, resposta vazia ou fora do vocabulário) é registrado para
// o operador e respondido pelo heurístico local; o jogador nunca vê o erro.
func (s *Service) Advise(ctx context.Context, req Request) game.Choice {
	// Rodadas iniciais não têm recomendação, nem vale gastar uma chamada
	// externa com elas.
	if req.CurrentRound < 3 || len(req.History) < 2 {
		return ""
	}

	if s.provider != nil {
		reply, err := s.provider.Suggest(ctx, req)
		if err != nil {
			log.Warn().Err(err).Msg("Advisory provider failed, using local fallback")
		} else {
			normalized := strings.ToLower(strings.TrimSpace(reply))
			if choice, ok := game.ParseChoice(normalized); ok {
				return choice
			}
			log.Warn().Str("reply", reply).
				Msg("Advisory provider returned an invalid reply, using local fallback")
		}
	}

	return Recommend(req.History, req.CurrentRound, req.PlayerName)
}
