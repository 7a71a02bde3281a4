package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rpsarena/internal/game"
	"rpsarena/internal/network"
	"rpsarena/internal/session/message"
)

// matchState é o que o cliente precisa lembrar da partida em andamento.
// O histórico de rodadas mora aqui, no cliente: o servidor não o guarda e
// ele é enviado junto com cada pedido de recomendação.
type matchState struct {
	mu      sync.Mutex
	room    string
	round   int
	history []game.HistoryEntry
}

func (s *matchState) reset(room string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.room = room
	s.round = 1
	s.history = nil
}

func (s *matchState) recordRound(p message.RoundResultPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, game.HistoryEntry{
		Round:          p.Round,
		PlayerChoice:   p.YourChoice,
		OpponentChoice: p.OpponentChoice,
		Result:         p.Result,
	})
	s.round = p.Round + 1
}

func (s *matchState) snapshot() (string, int, []game.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := make([]game.HistoryEntry, len(s.history))
	copy(history, s.history)
	return s.room, s.round, history
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	addr := os.Getenv("RPSARENA_SERVER")
	if addr == "" {
		addr = "localhost:8080"
	}

	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatal().Str("address", addr).Err(err).Msg("Could not connect to the server")
	}
	defer conn.Close()

	state := &matchState{}
	done := make(chan struct{})
	go readLoop(conn, state, done)

	fmt.Print("Your display name: ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return
	}
	name := strings.TrimSpace(scanner.Text())
	send(conn, "JOIN", map[string]string{"name": name})

	fmt.Println("Commands: rock | paper | scissors | hint | quit")

	for scanner.Scan() {
		input := strings.TrimSpace(strings.ToLower(scanner.Text()))
		room, round, history := state.snapshot()

		switch input {
		case "quit":
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			<-done
			return

		case "hint":
			send(conn, "GET_RECOMMENDATION", map[string]any{
				"room":    room,
				"round":   round,
				"history": history,
			})

		case "rock", "paper", "scissors":
			send(conn, "PLAY_CHOICE", map[string]string{
				"room":   room,
				"choice": input,
			})

		default:
			fmt.Println("Unknown command. Try: rock | paper | scissors | hint | quit")
		}
	}
}

func send(conn *websocket.Conn, msgType string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Could not encode payload")
		return
	}
	if err := conn.WriteJSON(network.Message{Type: msgType, Payload: raw}); err != nil {
		log.Error().Err(err).Msg("Could not send message")
	}
}

// readLoop imprime os eventos do servidor e mantém o estado local da partida.
func readLoop(conn *websocket.Conn, state *matchState, done chan<- struct{}) {
	defer close(done)

	for {
		var msg network.Message
		if err := conn.ReadJSON(&msg); err != nil {
			fmt.Println("Connection closed.")
			return
		}

		switch msg.Type {
		case message.TypeWelcome:
			// O prompt de nome já cobre isso.

		case message.TypeWaiting:
			fmt.Println("Searching for an opponent...")

		case message.TypeJoined:
			var p message.JoinedPayload
			json.Unmarshal(msg.Payload, &p)
			state.reset(p.Room)
			fmt.Printf("Match found! Room %s\n", p.Room)

		case message.TypeGameStart:
			var p message.GameStartPayload
			json.Unmarshal(msg.Payload, &p)
			fmt.Printf("The match against %s has started. Good luck!\n", p.Opponent)

		case message.TypeRoundResult:
			var p message.RoundResultPayload
			json.Unmarshal(msg.Payload, &p)
			state.recordRound(p)
			fmt.Printf("Round %d: you played %s, opponent played %s -> %s (score %d x %d)\n",
				p.Round, p.YourChoice, p.OpponentChoice, p.Result, p.YourScore, p.OpponentScore)

		case message.TypeGameOver:
			var p message.GameOverPayload
			json.Unmarshal(msg.Payload, &p)
			fmt.Printf("Game over: %s! Final score %s %d x %d %s\n",
				p.Result, p.You, p.YourScore, p.OpponentScore, p.Opponent)

		case message.TypeOpponentDisconnected:
			fmt.Println("Your opponent disconnected. The match is over.")

		case message.TypeRecommendation:
			var p message.RecommendationPayload
			json.Unmarshal(msg.Payload, &p)
			if p.Choice == "" {
				fmt.Println("No recommendation yet: not enough rounds played.")
			} else {
				fmt.Printf("Suggested move: %s\n", p.Choice)
			}

		default:
			fmt.Printf("Unknown event from server: %s\n", msg.Type)
		}
	}
}
