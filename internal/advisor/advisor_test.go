package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"rpsarena/internal/game"
)

// fakeProvider devolve uma resposta fixa ou um erro, e registra se foi chamado.
type fakeProvider struct {
	reply  string
	err    error
	called bool
}

func (f *fakeProvider) Suggest(ctx context.Context, req Request) (string, error) {
	f.called = true
	return f.reply, f.err
}

func adviseRequest() Request {
	return Request{
		History: []game.HistoryEntry{
			entry(1, game.Rock, game.Paper),
			entry(2, game.Rock, game.Paper),
		},
		CurrentRound: 3,
		PlayerName:   "Ann",
		OpponentName: "Bo",
	}
}

func TestServiceAdvise_UsesProviderReply(t *testing.T) {
	provider := &fakeProvider{reply: "rock"}
	service := NewService(provider)

	assert.Equal(t, game.Rock, service.Advise(context.Background(), adviseRequest()))
	assert.True(t, provider.called)
}

func TestServiceAdvise_NormalizesProviderReply(t *testing.T) {
	service := NewService(&fakeProvider{reply: "  Scissors\n"})

	assert.Equal(t, game.Scissors, service.Advise(context.Background(), adviseRequest()))
}

func TestServiceAdvise_FallsBack(t *testing.T) {
	req := adviseRequest()
	expected := Recommend(req.History, req.CurrentRound, req.PlayerName)
	// O fallback nunca fica mudo com sinal suficiente.
	assert.NotEqual(t, game.Choice(""), expected)

	tests := []struct {
		name     string
		provider Provider
	}{
		{"nil provider", nil},
		{"provider error", &fakeProvider{err: errors.New("timeout")}},
		{"empty reply", &fakeProvider{reply: ""}},
		{"out of vocabulary reply", &fakeProvider{reply: "I suggest rock!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(tt.provider)
			assert.Equal(t, expected, service.Advise(context.Background(), req))
		})
	}
}

func TestServiceAdvise_EarlyRoundsSkipProvider(t *testing.T) {
	provider := &fakeProvider{reply: "rock"}
	service := NewService(provider)

	req := adviseRequest()
	req.CurrentRound = 2

	assert.Equal(t, game.Choice(""), service.Advise(context.Background(), req))
	assert.False(t, provider.called, "provider must not be consulted before round 3")
}
