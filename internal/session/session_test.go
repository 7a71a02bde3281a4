package session

// Utilitários compartilhados pelos testes do pacote. O transporte inteiro é
// substituído por um Sender falso com canal bufferizado: nenhum teste abre
// uma conexão WebSocket.

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rpsarena/internal/network"
)

type fakeClient struct {
	id   string
	send chan network.Message
}

func newFakeClient(id string) *fakeClient {
	return &fakeClient{id: id, send: make(chan network.Message, 64)}
}

func (f *fakeClient) ID() string { return f.id }

func (f *fakeClient) Send() chan<- network.Message { return f.send }

func newTestSession(id, name string) (*PlayerSession, *fakeClient) {
	client := newFakeClient(id)
	s := NewPlayerSession(client)
	s.Name = name
	return s, client
}

// waitEvent espera pelo próximo evento do tipo pedido, descartando os demais.
func waitEvent(t *testing.T, client *fakeClient, msgType string) network.Message {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case msg := <-client.send:
			if msg.Type == msgType {
				return msg
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s on client %s", msgType, client.id)
		}
	}
}

// drainEvents esvazia o canal do cliente sem bloquear.
func drainEvents(client *fakeClient) []network.Message {
	var msgs []network.Message
	for {
		select {
		case msg := <-client.send:
			msgs = append(msgs, msg)
		default:
			return msgs
		}
	}
}

func countEvents(msgs []network.Message, msgType string) int {
	n := 0
	for _, msg := range msgs {
		if msg.Type == msgType {
			n++
		}
	}
	return n
}

// matchFixture monta uma partida Ann x Bo já pareada e iniciada.
type matchFixture struct {
	registry   *Registry
	matchmaker *Matchmaker
	room       *GameRoom

	ann, bo             *PlayerSession
	annClient, boClient *fakeClient
}

func newMatchFixture(t *testing.T, startDelay, cleanupDelay time.Duration) *matchFixture {
	t.Helper()

	registry := NewRegistry()
	matchmaker := NewMatchmaker(registry, startDelay, cleanupDelay)

	ann, annClient := newTestSession("conn-ann", "Ann")
	bo, boClient := newTestSession("conn-bo", "Bo")

	require.Nil(t, matchmaker.Join(ann), "first joiner must wait")
	room := matchmaker.Join(bo)
	require.NotNil(t, room, "second joiner must pair")
	room.Start()

	f := &matchFixture{
		registry:   registry,
		matchmaker: matchmaker,
		room:       room,
		ann:        ann,
		bo:         bo,
		annClient:  annClient,
		boClient:   boClient,
	}
	// Garante que nenhum timer da sala sobrevive ao teste.
	t.Cleanup(func() { f.room.HandleDisconnect(f.ann) })
	return f
}

// roundState lê rodada e fase sob o lock da sala.
func (f *matchFixture) roundState() (int, string) {
	f.room.mu.Lock()
	defer f.room.mu.Unlock()
	return f.room.round, f.room.phase
}
