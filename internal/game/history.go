package game

// HistoryEntry é uma rodada já resolvida, na perspectiva do jogador que pede
// uma recomendação. O servidor não guarda esse histórico: ele pertence ao
// cliente e chega junto com o pedido de recomendação.
type HistoryEntry struct {
	Round          int    `json:"round"`
	PlayerChoice   Choice `json:"playerChoice"`
	OpponentChoice Choice `json:"opponentChoice"`
	Result         Result `json:"result"`
}
