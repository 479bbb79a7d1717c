package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freer4an/rpc-game-nodejs/internal/moves"
)

func mustSet(t *testing.T, names ...string) moves.MoveSet {
	t.Helper()
	set, err := moves.New(names)
	require.NoError(t, err)
	return set
}

func TestBuildTableClassic(t *testing.T) {
	tbl := BuildTable(mustSet(t, "Rock", "Paper", "Scissors"))

	assert.Equal(t, []string{"Rock", "Paper", "Scissors"}, tbl.Moves)
	assert.Equal(t, [][]Verdict{
		{Draw, Lose, Win},
		{Win, Draw, Lose},
		{Lose, Win, Draw},
	}, tbl.Cells)
}

func TestBuildTableMatchesResolver(t *testing.T) {
	set := mustSet(t, "a", "b", "c", "d", "e", "f", "g")
	tbl := BuildTable(set)
	for i := 0; i < set.Len(); i++ {
		for j := 0; j < set.Len(); j++ {
			assert.Equal(t, DetermineWinner(i, j, set.Len()), tbl.At(i, j))
			assert.Equal(t, tbl.At(i, j), tbl.At(j, i).Invert())
		}
	}
}

func TestBuildTableDependsOnlyOnSize(t *testing.T) {
	a := BuildTable(mustSet(t, "Rock", "Paper", "Scissors"))
	b := BuildTable(mustSet(t, "x", "y", "z"))
	assert.Equal(t, a.Cells, b.Cells)
	assert.Equal(t, a, BuildTable(mustSet(t, "Rock", "Paper", "Scissors")))
}

func TestTableBeats(t *testing.T) {
	tbl := BuildTable(mustSet(t, "Rock", "Spock", "Paper", "Lizard", "Scissors"))
	assert.ElementsMatch(t, []string{"Lizard", "Scissors"}, tbl.Beats(0))
	assert.ElementsMatch(t, []string{"Rock", "Scissors"}, tbl.Beats(1))
	assert.ElementsMatch(t, []string{"Rock", "Spock"}, tbl.Beats(2))
	assert.ElementsMatch(t, []string{"Spock", "Paper"}, tbl.Beats(3))
	assert.ElementsMatch(t, []string{"Paper", "Lizard"}, tbl.Beats(4))
}
