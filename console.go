package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/automoto/rpgplayer/bridge"
	"github.com/automoto/rpgplayer/shared/keys"
)

var errUnknownCommand = errors.New("unknown command, try help")

const consoleHelp = `commands:
  press <key>       hold a virtual key, like press Z
  release <key>     let go of a virtual key
  pause | resume    pause or resume the game
  speed [factor]    show or set the game speed factor
  ff <n>            set the fast forward A multiplier
  walls [on|off]    show or set walking through walls
  settings          open the settings overlay
  reset             reset the game
  exit              save if enabled and quit`

// console forwards line commands to the bridge. It runs on its own
// goroutine, the bridge queues everything for the next frame.
type console struct {
	bridge *bridge.Bridge
	out    io.Writer
}

func newConsole(b *bridge.Bridge, out io.Writer) *console {
	return &console{bridge: b, out: out}
}

// run executes commands until r ends.
func (c *console) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := c.exec(scanner.Text()); err != nil {
			fmt.Fprintln(c.out, "error:", err)
		}
	}
	return scanner.Err()
}

func (c *console) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "help":
		fmt.Fprintln(c.out, consoleHelp)
		return nil
	case "press", "release":
		if len(args) != 1 {
			return fmt.Errorf("usage: %s <key>", cmd)
		}
		k, ok := keys.FromName(strings.ToUpper(args[0]))
		if !ok {
			return fmt.Errorf("unknown key %q", args[0])
		}
		return c.bridge.PressVirtualKey(k, cmd == "press")
	case "pause":
		return c.bridge.PauseGame()
	case "resume":
		return c.bridge.ResumeGame()
	case "speed":
		if len(args) == 0 {
			fmt.Fprintf(c.out, "speed %.2f\n", c.bridge.GameSpeedFactor())
			return nil
		}
		f, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid speed %q", args[0])
		}
		return c.bridge.SetGameSpeedFactor(f)
	case "ff":
		if len(args) != 1 {
			return errors.New("usage: ff <n>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid multiplier %q", args[0])
		}
		return c.bridge.SetFastForwardMultiplier(n)
	case "walls":
		if len(args) == 0 {
			fmt.Fprintf(c.out, "walls %v\n", c.bridge.WalkThroughWalls())
			return nil
		}
		switch strings.ToLower(args[0]) {
		case "on":
			return c.bridge.SwitchWalkThroughWalls(true)
		case "off":
			return c.bridge.SwitchWalkThroughWalls(false)
		}
		return errors.New("usage: walls [on|off]")
	case "settings":
		return c.bridge.OpenSettings()
	case "reset":
		return c.bridge.ResetGame()
	case "exit", "quit":
		return c.bridge.EndGame()
	}
	return errUnknownCommand
}
