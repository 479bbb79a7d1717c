package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/freer4an/rpc-game-nodejs/internal/game"
	"github.com/freer4an/rpc-game-nodejs/internal/moves"
)

// tableCorner labels the axes of the help table.
const tableCorner = "You↓ / Bot→"

func printMenu(out io.Writer, set moves.MoveSet) {
	fmt.Fprintln(out, "Available moves:")
	for i, name := range set.Names() {
		fmt.Fprintf(out, "%d - %s\n", i+1, name)
	}
	fmt.Fprintf(out, "%s - exit\n%s - help\n", game.ExitInput, game.HelpInput)
}

// printTable renders t with your move on the rows and the bot's on the
// columns; each cell is your result. A "beats" summary follows the grid.
func printTable(out io.Writer, t game.Table) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t\n", tableCorner, strings.Join(t.Moves, "\t"))
	for i, name := range t.Moves {
		cells := make([]string, len(t.Cells[i]))
		for j, v := range t.Cells[i] {
			cells[j] = verdictLabel(v)
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", name, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	for i, name := range t.Moves {
		if _, err := fmt.Fprintf(out, "%s beats: %s\n", name, strings.Join(t.Beats(i), ", ")); err != nil {
			return err
		}
	}
	return nil
}

func printResult(out io.Writer, r game.Result) {
	fmt.Fprintf(out, "Your move: %s\n", r.UserMove)
	fmt.Fprintf(out, "Bot move: %s\n", r.BotMove)
	fmt.Fprintln(out, verdictMessage(r.Verdict))
	fmt.Fprintf(out, "HMAC key: %s\n", r.Key)
}

func verdictLabel(v game.Verdict) string {
	switch v {
	case game.Win:
		return "Win"
	case game.Lose:
		return "Lose"
	}
	return "Draw"
}

func verdictMessage(v game.Verdict) string {
	switch v {
	case game.Win:
		return "You win!"
	case game.Lose:
		return "Bot wins!"
	}
	return "Draw!"
}
