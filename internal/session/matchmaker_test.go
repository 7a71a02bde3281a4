package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchmakerFirstJoinerWaits(t *testing.T) {
	registry := NewRegistry()
	m := NewMatchmaker(registry, time.Millisecond, time.Millisecond)

	ann, _ := newTestSession("conn-ann", "Ann")

	require.Nil(t, m.Join(ann))
	assert.Zero(t, registry.Len())
}

func TestMatchmakerSecondJoinerPairs(t *testing.T) {
	registry := NewRegistry()
	m := NewMatchmaker(registry, time.Millisecond, time.Millisecond)

	ann, _ := newTestSession("conn-ann", "Ann")
	bo, _ := newTestSession("conn-bo", "Bo")

	require.Nil(t, m.Join(ann))
	room := m.Join(bo)
	require.NotNil(t, room)

	// A ordem de entrada é preservada: quem esperava ocupa o primeiro slot.
	assert.Same(t, ann, room.players[0].session)
	assert.Same(t, bo, room.players[1].session)

	assert.Equal(t, 1, registry.Len())
	assert.Same(t, room, registry.Get(room.Token()))

	// A fila volta a ficar vazia: um terceiro jogador espera de novo.
	cat, _ := newTestSession("conn-cat", "Cat")
	assert.Nil(t, m.Join(cat))
}

func TestMatchmakerCancelWaiting(t *testing.T) {
	registry := NewRegistry()
	m := NewMatchmaker(registry, time.Millisecond, time.Millisecond)

	ann, _ := newTestSession("conn-ann", "Ann")
	stranger, _ := newTestSession("conn-x", "Xan")

	require.Nil(t, m.Join(ann))

	// Cancelar uma sessão que não está na fila não mexe no slot.
	m.CancelWaiting(stranger)
	bo, _ := newTestSession("conn-bo", "Bo")
	room := m.Join(bo)
	require.NotNil(t, room, "Ann should still be waiting")
	room.cleanup()

	// Agora sim: Ann entra e sai, e Bo volta a esperar sozinho.
	require.Nil(t, m.Join(ann))
	m.CancelWaiting(ann)

	cat, _ := newTestSession("conn-cat", "Cat")
	assert.Nil(t, m.Join(cat))
}
