// Package cli is the interactive shell around the game engine. It parses
// command-line arguments, prints the commitment and menu, reads the
// player's selection and reports how the session ended. It never exits the
// process; main maps the returned signal to an exit code.
package cli
