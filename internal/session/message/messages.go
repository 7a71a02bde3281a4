// Pacote message define os eventos que vão no sentido servidor -> cliente.
// Cada evento tem um construtor próprio para que nenhum handler monte JSON na mão.
package message

import (
	"encoding/json"

	"rpsarena/internal/game"
	"rpsarena/internal/network"
)

// Tipos de evento emitidos pelo servidor.
const (
	TypeWelcome              = "WELCOME"
	TypeWaiting              = "WAITING_FOR_OPPONENT"
	TypeJoined               = "JOINED"
	TypeGameStart            = "GAME_START"
	TypeRoundResult          = "ROUND_RESULT"
	TypeGameOver             = "GAME_OVER"
	TypeOpponentDisconnected = "OPPONENT_DISCONNECTED"
	TypeRecommendation       = "RECOMMENDATION"
)

// JoinedPayload carrega o token da sessão recém-criada.
type JoinedPayload struct {
	Room string `json:"room"`
}

// GameStartPayload avisa cada jogador quem é o oponente.
type GameStartPayload struct {
	Opponent string `json:"opponent"`
}

// RoundResultPayload é o resultado de uma rodada na perspectiva de quem recebe:
// o próprio resultado, a jogada revelada do oponente e os dois placares,
// sempre com o placar próprio primeiro.
type RoundResultPayload struct {
	Round          int         `json:"round"`
	Result         game.Result `json:"result"`
	YourChoice     game.Choice `json:"yourChoice"`
	OpponentChoice game.Choice `json:"opponentChoice"`
	YourScore      int         `json:"yourScore"`
	OpponentScore  int         `json:"opponentScore"`
}

// GameOverPayload é o desfecho final da partida, também na perspectiva de quem
// recebe (placar e nome próprios primeiro).
type GameOverPayload struct {
	Result        game.Result `json:"finalResult"`
	YourScore     int         `json:"yourScore"`
	OpponentScore int         `json:"opponentScore"`
	You           string      `json:"you"`
	Opponent      string      `json:"opponent"`
}

// RecommendationPayload devolve a sugestão do advisor. Choice vazio significa
// que ainda não há sinal suficiente para recomendar.
type RecommendationPayload struct {
	Choice game.Choice `json:"choice"`
}

func create(msgType string, payload any) network.Message {
	var raw json.RawMessage
	if payload != nil {
		raw, _ = json.Marshal(payload)
	}
	return network.Message{Type: msgType, Payload: raw}
}

// CreateWelcome é enviada assim que a conexão é aceita, antes do JOIN.
func CreateWelcome() network.Message {
	return create(TypeWelcome, map[string]string{
		"message": "Welcome! Send a JOIN with your display name to find a match.",
	})
}

// CreateWaiting avisa o jogador que ele está aguardando um oponente.
func CreateWaiting() network.Message {
	return create(TypeWaiting, map[string]string{
		"message": "Searching for an opponent...",
	})
}

func CreateJoined(room string) network.Message {
	return create(TypeJoined, JoinedPayload{Room: room})
}

func CreateGameStart(opponent string) network.Message {
	return create(TypeGameStart, GameStartPayload{Opponent: opponent})
}

func CreateRoundResult(p RoundResultPayload) network.Message {
	return create(TypeRoundResult, p)
}

func CreateGameOver(p GameOverPayload) network.Message {
	return create(TypeGameOver, p)
}

func CreateOpponentDisconnected() network.Message {
	return create(TypeOpponentDisconnected, nil)
}

func CreateRecommendation(choice game.Choice) network.Message {
	return create(TypeRecommendation, RecommendationPayload{Choice: choice})
}
