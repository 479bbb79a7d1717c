package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freer4an/rpc-game-nodejs/internal/config"
	"github.com/freer4an/rpc-game-nodejs/internal/fairness"
	"github.com/freer4an/rpc-game-nodejs/internal/game"
	"github.com/freer4an/rpc-game-nodejs/internal/moves"
)

const seqKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

var classic = []string{"Rock", "Paper", "Scissors"}

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

// source yields the bot's move byte followed by key bytes 0x00..0x1f.
func source(move byte) io.Reader {
	b := []byte{move}
	for i := 0; i < 32; i++ {
		b = append(b, byte(i))
	}
	return bytes.NewReader(b)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read error") }

func defaultConfig() config.Config {
	return config.Config{LogLevel: "info", LogFormat: "console", KeyBytes: 32}
}

func run(t *testing.T, names []string, input string, bot byte) (game.Signal, string) {
	t.Helper()
	out := &bytes.Buffer{}
	sig, err := Run(Options{Moves: names, KeyBytes: 32}, strings.NewReader(input), out, source(bot))
	require.NoError(t, err)
	return sig, out.String()
}

func TestParseDefaults(t *testing.T) {
	opts, done, err := Parse([]string{"Rock", "Paper", "Scissors"}, &bytes.Buffer{}, defaultConfig())
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, &Options{Moves: classic, KeyBytes: 32, LogLevel: "info"}, opts)
}

func TestParseFlags(t *testing.T) {
	args := []string{"-key-bytes", "48", "-log-level", "DEBUG", "--", "-a", "b", "c"}
	opts, _, err := Parse(args, &bytes.Buffer{}, defaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 48, opts.KeyBytes)
	assert.Equal(t, "debug", opts.LogLevel)
	assert.Equal(t, []string{"-a", "b", "c"}, opts.Moves)
}

func TestParseHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	opts, done, err := Parse([]string{"-h"}, buf, defaultConfig())
	require.NoError(t, err)
	assert.True(t, done)
	assert.Nil(t, opts)
	assert.Contains(t, buf.String(), "Usage:")
}

func TestParseErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-unknown"},
		{"-key-bytes", "8", "a", "b", "c"},
		{"-log-level", "loud", "a", "b", "c"},
	} {
		_, done, err := Parse(args, &bytes.Buffer{}, defaultConfig())
		assert.False(t, done)

		var ee *ExitError
		require.True(t, errors.As(err, &ee), "args %v", args)
		assert.Equal(t, 2, ee.Code)
	}
}

func TestRunWin(t *testing.T) {
	sig, out := run(t, classic, "1\n", 2)

	assert.Equal(t, game.SignalSessionComplete, sig.Kind)
	require.NotNil(t, sig.Result)
	assert.Equal(t, game.Win, sig.Result.Verdict)
	assert.Equal(t, 0, ExitCode(sig))

	mac := fairness.ComputeMAC(seqKey, "Scissors")
	assert.Contains(t, out, "HMAC: "+mac+"\n")
	assert.Contains(t, out, "1 - Rock\n2 - Paper\n3 - Scissors\n0 - exit\n? - help\n")
	assert.Contains(t, out, "Your move: Rock\nBot move: Scissors\nYou win!\nHMAC key: "+seqKey+"\n")
}

func TestRunLoseAndDraw(t *testing.T) {
	sig, out := run(t, classic, "1\n", 1)
	assert.Equal(t, game.Lose, sig.Result.Verdict)
	assert.Contains(t, out, "Bot wins!")

	sig, out = run(t, classic, "3\n", 2)
	assert.Equal(t, game.Draw, sig.Result.Verdict)
	assert.Contains(t, out, "Draw!")
}

func TestRunMACPrecedesKey(t *testing.T) {
	_, out := run(t, classic, "2\n", 0)
	macAt := strings.Index(out, "HMAC: ")
	promptAt := strings.Index(out, "Your move: ")
	keyAt := strings.Index(out, seqKey)
	require.True(t, macAt >= 0 && promptAt >= 0 && keyAt >= 0)
	assert.Less(t, macAt, promptAt)
	assert.Less(t, promptAt, keyAt)
}

func TestRunRepromptsOnInvalidInput(t *testing.T) {
	sig, out := run(t, classic, "banana\n4\n\n2\n", 0)

	assert.Equal(t, game.SignalSessionComplete, sig.Kind)
	assert.Equal(t, 3, strings.Count(out, "Invalid move. Please enter a number from 1 to 3"))
	assert.Equal(t, 1, strings.Count(out, "HMAC: "))
	assert.Equal(t, "Paper", sig.Result.UserMove)
	assert.Equal(t, "Rock", sig.Result.BotMove)
	assert.True(t, fairness.Verify(sig.Result.Key, sig.Result.BotMove, sig.Result.MAC))
}

func TestRunHelpPrintsTable(t *testing.T) {
	sig, out := run(t, classic, "?\n1\n", 0)
	assert.Equal(t, game.SignalSessionComplete, sig.Kind)

	rows := map[string][]string{}
	for _, line := range strings.Split(out, "\n") {
		f := strings.Fields(line)
		if len(f) == 4 {
			rows[f[0]] = f[1:]
		}
	}
	assert.Contains(t, out, tableCorner)
	assert.Equal(t, []string{"Draw", "Lose", "Win"}, rows["Rock"])
	assert.Equal(t, []string{"Win", "Draw", "Lose"}, rows["Paper"])
	assert.Equal(t, []string{"Lose", "Win", "Draw"}, rows["Scissors"])
}

func TestRunHelpListsBeats(t *testing.T) {
	names := []string{"Rock", "Spock", "Paper", "Lizard", "Scissors"}
	_, out := run(t, names, "?\n0\n", 0)
	assert.Contains(t, out, "Rock beats: Lizard, Scissors\n")
	assert.Contains(t, out, "Spock beats: Rock, Scissors\n")
	assert.Contains(t, out, "Scissors beats: Paper, Lizard\n")
}

func TestRunOverlongLineReprompts(t *testing.T) {
	input := strings.Repeat("x", 70000) + "\n1\n"
	sig, out := run(t, classic, input, 2)

	assert.Equal(t, game.SignalSessionComplete, sig.Kind)
	assert.Equal(t, 1, strings.Count(out, "HMAC: "))
	assert.Equal(t, 1, strings.Count(out, "Invalid move. Please enter a number from 1 to 3"))
	assert.Equal(t, "Rock", sig.Result.UserMove)
}

func TestRunFinalLineWithoutNewline(t *testing.T) {
	sig, _ := run(t, classic, "3", 0)
	assert.Equal(t, game.SignalSessionComplete, sig.Kind)
	assert.Equal(t, "Scissors", sig.Result.UserMove)
}

func TestReadLine(t *testing.T) {
	long := strings.Repeat("y", maxLineBytes+1)
	br := bufio.NewReaderSize(strings.NewReader("a\r\n"+long+"\nb"), 16)

	line, tooLong, err := readLine(br)
	require.NoError(t, err)
	assert.False(t, tooLong)
	assert.Equal(t, "a", line)

	line, tooLong, err = readLine(br)
	require.NoError(t, err)
	assert.True(t, tooLong)
	assert.Empty(t, line)

	line, tooLong, err = readLine(br)
	require.NoError(t, err)
	assert.False(t, tooLong)
	assert.Equal(t, "b", line)

	_, _, err = readLine(br)
	assert.ErrorIs(t, err, io.EOF)
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("write error") }

func TestPrintTableReportsWriteError(t *testing.T) {
	set, err := moves.New(classic)
	require.NoError(t, err)
	err = printTable(errWriter{}, game.BuildTable(set))
	assert.ErrorContains(t, err, "flush table")
}

func TestRunExit(t *testing.T) {
	sig, out := run(t, classic, "0\n", 1)
	assert.Equal(t, game.UserRequestedExit(), sig)
	assert.Equal(t, 0, ExitCode(sig))
	assert.NotContains(t, out, seqKey)
	assert.NotContains(t, out, "Bot move")
}

func TestRunEOFIsExit(t *testing.T) {
	sig, out := run(t, classic, "", 1)
	assert.Equal(t, game.SignalUserExit, sig.Kind)
	assert.NotContains(t, out, seqKey)
}

func TestRunValidationFailed(t *testing.T) {
	cases := []struct {
		names []string
		want  error
		msg   string
	}{
		{[]string{"Rock", "Paper"}, moves.ErrInvalidMoveCount, "at least 3 moves and an odd number of them are required, got 2"},
		{nil, moves.ErrInvalidMoveCount, "got 0"},
		{[]string{"Rock", "Rock", "Paper"}, moves.ErrDuplicateMoves, "duplicate moves found: Rock"},
	}
	for _, tc := range cases {
		out := &bytes.Buffer{}
		sig, err := Run(Options{Moves: tc.names, KeyBytes: 32}, strings.NewReader("1\n"), out, errReader{})
		require.NoError(t, err)
		assert.Equal(t, game.SignalValidationFailed, sig.Kind)
		assert.ErrorIs(t, sig.Err, tc.want)
		assert.Equal(t, 1, ExitCode(sig))
		assert.Contains(t, out.String(), tc.msg)
		assert.NotContains(t, out.String(), "HMAC")
	}
}

func TestRunRandomSourceError(t *testing.T) {
	_, err := Run(Options{Moves: classic, KeyBytes: 32}, strings.NewReader("1\n"), &bytes.Buffer{}, errReader{})
	assert.Error(t, err)
}

func TestRunInputError(t *testing.T) {
	_, err := Run(Options{Moves: classic, KeyBytes: 32}, errReader{}, &bytes.Buffer{}, source(0))
	assert.ErrorContains(t, err, "read move")
}
