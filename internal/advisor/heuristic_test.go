package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"rpsarena/internal/game"
)

// Nomes escolhidos pelo valor da soma dos códigos de caracteres, para cair
// em cada estratégia de análise:
//
//	"B" = 66 -> 66%3 = 0 (recência), 66%2 = 0 (desempate fica no anterior)
//	"E" = 69 -> 69%3 = 0 (recência), 69%2 = 1 (desempate troca pelo seguinte)
//	"F" = 70 -> 70%3 = 1 (jogadas vencedoras do oponente)
//	"D" = 68 -> 68%3 = 2 (histórico completo com viés)
const (
	nameRecencyEven     = "B"
	nameRecencyOdd      = "E"
	nameOpponentSuccess = "F"
	nameFullHistory     = "D"
)

func entry(round int, player, opponent game.Choice) game.HistoryEntry {
	return game.HistoryEntry{
		Round:          round,
		PlayerChoice:   player,
		OpponentChoice: opponent,
		Result:         game.DetermineWinner(player, opponent),
	}
}

func TestRecommend_InsufficientSignal(t *testing.T) {
	history := []game.HistoryEntry{
		entry(1, game.Rock, game.Scissors),
		entry(2, game.Rock, game.Paper),
	}

	tests := []struct {
		name         string
		history      []game.HistoryEntry
		currentRound int
	}{
		{"round below 3", history, 2},
		{"round 1", history, 1},
		{"short history", history[:1], 5},
		{"empty history", nil, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, game.Choice(""), Recommend(tt.history, tt.currentRound, "Ann"))
		})
	}
}

func TestRecommend_RecencyStrategy(t *testing.T) {
	// A primeira rodada (scissors) está fora da janela das últimas 3;
	// o oponente insistiu em rock depois, então a resposta é paper.
	history := []game.HistoryEntry{
		entry(1, game.Rock, game.Scissors),
		entry(2, game.Paper, game.Rock),
		entry(3, game.Scissors, game.Rock),
		entry(4, game.Rock, game.Rock),
	}

	assert.Equal(t, game.Paper, Recommend(history, 5, nameRecencyEven))
}

func TestRecommend_OpponentSuccessStrategy(t *testing.T) {
	// Só contam as rodadas em que o oponente venceu: duas com scissors.
	// As vitórias do próprio jogador (oponente de rock) não entram.
	history := []game.HistoryEntry{
		entry(1, game.Paper, game.Scissors), // perdeu
		entry(2, game.Paper, game.Rock),     // venceu
		entry(3, game.Paper, game.Scissors), // perdeu
		entry(4, game.Paper, game.Rock),     // venceu
	}

	assert.Equal(t, game.Rock, Recommend(history, 5, nameOpponentSuccess))
}

func TestRecommend_FullHistoryBias(t *testing.T) {
	// Uma jogada de cada: o bônus de 0.5 no bucket de scissors decide,
	// e a resposta é o counter de scissors.
	history := []game.HistoryEntry{
		entry(1, game.Rock, game.Rock),
		entry(2, game.Rock, game.Paper),
		entry(3, game.Rock, game.Scissors),
	}

	assert.Equal(t, game.Rock, Recommend(history, 4, nameFullHistory))
}

func TestRecommend_TieBreakBySeed(t *testing.T) {
	// rock e paper empatados em 1. Semente par fica com rock (counter
	// paper); semente ímpar troca por paper (counter scissors).
	history := []game.HistoryEntry{
		entry(1, game.Rock, game.Rock),
		entry(2, game.Rock, game.Paper),
	}

	assert.Equal(t, game.Paper, Recommend(history, 3, nameRecencyEven))
	assert.Equal(t, game.Scissors, Recommend(history, 3, nameRecencyOdd))
}

func TestRecommend_IgnoresOutOfVocabularyEntries(t *testing.T) {
	history := []game.HistoryEntry{
		{Round: 1, PlayerChoice: game.Rock, OpponentChoice: "lizard", Result: game.ResultTie},
		entry(2, game.Rock, game.Paper),
		entry(3, game.Rock, game.Paper),
	}

	assert.Equal(t, game.Scissors, Recommend(history, 4, nameRecencyEven))
}

// TestRecommend_Deterministic cobre as propriedades do fallback: mesma
// entrada sempre produz a mesma saída, e com sinal suficiente a saída é
// sempre uma jogada válida.
func TestRecommend_Deterministic(t *testing.T) {
	choiceGen := rapid.SampledFrom(game.Choices[:])

	rapid.Check(t, func(t *rapid.T) {
		length := rapid.IntRange(0, 7).Draw(t, "length")
		history := make([]game.HistoryEntry, length)
		for i := range history {
			player := choiceGen.Draw(t, "player")
			opponent := choiceGen.Draw(t, "opponent")
			history[i] = entry(i+1, player, opponent)
		}
		currentRound := rapid.IntRange(1, 7).Draw(t, "currentRound")
		playerName := rapid.StringMatching(`[A-Za-z]{0,12}`).Draw(t, "playerName")

		first := Recommend(history, currentRound, playerName)
		second := Recommend(history, currentRound, playerName)
		assert.Equal(t, first, second)

		if currentRound < 3 || len(history) < 2 {
			assert.Equal(t, game.Choice(""), first)
		} else {
			_, valid := game.ParseChoice(string(first))
			assert.True(t, valid, "recommendation %q is not a valid choice", first)
		}
	})
}
