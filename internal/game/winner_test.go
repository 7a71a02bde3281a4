package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDetermineWinner(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Choice
		expected Result
	}{
		{"rock beats scissors", Rock, Scissors, ResultWin},
		{"paper beats rock", Paper, Rock, ResultWin},
		{"scissors beats paper", Scissors, Paper, ResultWin},
		{"scissors loses to rock", Scissors, Rock, ResultLose},
		{"rock loses to paper", Rock, Paper, ResultLose},
		{"paper loses to scissors", Paper, Scissors, ResultLose},
		{"rock ties rock", Rock, Rock, ResultTie},
		{"paper ties paper", Paper, Paper, ResultTie},
		{"scissors ties scissors", Scissors, Scissors, ResultTie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineWinner(tt.a, tt.b))
		})
	}
}

// TestDetermineWinner_Antisymmetry verifica a propriedade central da regra:
// se a vence b, então b perde de a, e toda jogada empata consigo mesma.
func TestDetermineWinner_Antisymmetry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.SampledFrom(Choices[:]).Draw(t, "a")
		b := rapid.SampledFrom(Choices[:]).Draw(t, "b")

		direct := DetermineWinner(a, b)
		reverse := DetermineWinner(b, a)

		assert.Equal(t, direct.Mirror(), reverse)
		if a == b {
			assert.Equal(t, ResultTie, direct)
		} else {
			assert.NotEqual(t, ResultTie, direct)
		}
	})
}

func TestCounterBeatsEveryChoice(t *testing.T) {
	for _, c := range Choices {
		assert.Equal(t, ResultWin, DetermineWinner(Counter(c), c), "counter of %s", c)
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"rock", true},
		{"paper", true},
		{"scissors", true},
		{"", false},
		{"ROCK", false},
		{"lizard", false},
		{"rock ", false},
	}

	for _, tt := range tests {
		_, ok := ParseChoice(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
	}
}
