package game

// Choice representa uma jogada válida do jokenpo: rock, paper ou scissors.
// O tipo é uma string para que a serialização JSON fique idêntica ao que o
// cliente envia e recebe.
type Choice string

const (
	Rock     Choice = "rock"
	Paper    Choice = "paper"
	Scissors Choice = "scissors"
)

// Choices lista as jogadas na ordem de definição. A ordem importa: o
// desempate determinístico do advisor percorre as jogadas nesta sequência.
var Choices = [3]Choice{Rock, Paper, Scissors}

// counters define qual jogada vence cada jogada. A chave é a jogada do
// oponente, o valor é a resposta que a derrota.
var counters = map[Choice]Choice{
	Rock:     Paper,
	Paper:    Scissors,
	Scissors: Rock,
}

// ParseChoice valida o texto vindo do cliente. Retorna false para qualquer
// valor fora do vocabulário, sem normalizar nada além disso.
func ParseChoice(s string) (Choice, bool) {
	switch Choice(s) {
	case Rock, Paper, Scissors:
		return Choice(s), true
	}
	return "", false
}

// Counter retorna a jogada que vence c.
func Counter(c Choice) Choice {
	return counters[c]
}
