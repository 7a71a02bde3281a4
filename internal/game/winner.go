package game

// Result é o desfecho de uma rodada do ponto de vista de um único jogador.
type Result string

const (
	ResultWin  Result = "win"
	ResultLose Result = "lose"
	ResultTie  Result = "tie"
)

// winConditions define a regra primária do jokenpo.
// A chave vence o valor. Ex: "rock" vence "scissors".
var winConditions = map[Choice]Choice{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// DetermineWinner compara duas jogadas e retorna o resultado na perspectiva
// da primeira. O resultado do oponente é sempre o espelho (ver Mirror):
// exatamente um entre {a vence, b vence, empate} vale por rodada.
func DetermineWinner(a, b Choice) Result {
	if a == b {
		return ResultTie
	}
	if winConditions[a] == b {
		return ResultWin
	}
	return ResultLose
}

// Mirror retorna o resultado visto pelo outro jogador.
func (r Result) Mirror() Result {
	switch r {
	case ResultWin:
		return ResultLose
	case ResultLose:
		return ResultWin
	}
	return ResultTie
}
