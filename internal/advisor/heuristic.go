package advisor

import (
	"rpsarena/internal/game"
)

// Recommend é o fallback garantido do advisor: uma análise de padrões pura e
// determinística sobre o histórico do jogador. Mesmas entradas, mesma saída,
// sem nenhuma aleatoriedade escondida; funciona com o serviço externo fora
// do ar, sem credencial, sem rede.
//
// Retorna vazio quando ainda não há sinal suficiente (antes da rodada 3 ou
// com menos de 2 rodadas de histórico). Caso contrário a resposta é sempre
// uma jogada válida: a que vence a jogada mais provável do oponente.
func Recommend(history []game.HistoryEntry, currentRound int, playerName string) game.Choice {
	if currentRound < 3 || len(history) < 2 {
		return ""
	}

	// A semente derivada do nome diferencia a análise por jogador: dois
	// jogadores com o mesmo histórico recebem conselhos diferentes.
	seed := nameSeed(playerName)

	counts := map[game.Choice]float64{
		game.Rock:     0,
		game.Paper:    0,
		game.Scissors: 0,
	}

	switch seed % 3 {
	case 0:
		// Estratégia 1: só as jogadas recentes do oponente (últimas 3).
		recent := history
		if len(recent) > 3 {
			recent = recent[len(recent)-3:]
		}
		for _, entry := range recent {
			tally(counts, entry.OpponentChoice)
		}

	case 1:
		// Estratégia 2: só as jogadas com que o oponente venceu.
		for _, entry := range history {
			if entry.Result == game.ResultLose {
				tally(counts, entry.OpponentChoice)
			}
		}

	default:
		// Estratégia 3: histórico completo, com um bônus fixo em um dos
		// buckets para que empates se resolvam de forma determinística
		// em vez de aleatória.
		for _, entry := range history {
			tally(counts, entry.OpponentChoice)
		}
		counts[game.Choices[seed%3]] += 0.5
	}

	// Escolhe o bucket mais frequente. Empate desempata pela semente:
	// par fica com o candidato anterior na ordem de definição, ímpar
	// troca pelo seguinte.
	best := game.Choices[0]
	for _, candidate := range game.Choices[1:] {
		if counts[candidate] > counts[best] {
			best = candidate
		} else if counts[candidate] == counts[best] && seed%2 == 1 {
			best = candidate
		}
	}

	return game.Counter(best)
}

// tally só conta jogadas dentro do vocabulário; o histórico vem do cliente
// e pode trazer qualquer coisa.
func tally(counts map[game.Choice]float64, c game.Choice) {
	if _, ok := counts[c]; ok {
		counts[c]++
	}
}

// nameSeed soma os códigos dos caracteres do nome do jogador.
func nameSeed(playerName string) int {
	seed := 0
	for _, r := range playerName {
		seed += int(r)
	}
	return seed
}
