// The sceneshell command runs an interactive shell for loading and
// rendering wavefront-style scene files.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ergochat/readline"
	rt "github.com/lucidtrace/raytracer"
)

type Command struct {
	// Symbol is the canonical name of the command.
	// It includes the leading ":" for every command except "help".
	Symbol       string
	Aliases      []string
	ExpectedArgs []string // For generating help.
	HelpText     string
	Run          func(*State) error
}

type State struct {
	args     []string
	scene    *rt.Scene
	loadedAs string
	cam      rt.CameraOptions
	opts     rt.RenderOptions
	commands []*Command
}

// errQuit is a signal to the main loop to quit.
var errQuit = errors.New("quit")

func main() {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:       "scene> ",
		HistoryFile:  readlineHistoryFilePath(),
		HistoryLimit: 10000,
	})
	if err != nil {
		log.Fatalf("readline init error: %v", err)
	}

	state := &State{
		cam:  rt.NewCameraOptions(800, 600),
		opts: rt.RenderOptions{Depth: 5, Mode: rt.ModeFull},
	}

	var commands []*Command
	commandLookup := make(map[string]*Command)

	registerCommand := func(command *Command) {
		mustAddToLookup := func(symbol string) {
			if commandLookup[symbol] != nil {
				log.Fatalf("duplicate command: %v vs %v", command, commandLookup[symbol])
			}
			commandLookup[symbol] = command
		}
		commands = append(commands, command)
		mustAddToLookup(command.Symbol)
		for _, alias := range command.Aliases {
			mustAddToLookup(alias)
		}
	}

	registerCommand(&Command{
		Symbol:       ":load",
		Aliases:      []string{":l"},
		ExpectedArgs: []string{"<filename>"},
		HelpText:     "Load a scene file",
		Run: func(st *State) error {
			if len(st.args) < 1 {
				return errors.New("usage: :load <filename>")
			}
			scene, err := rt.LoadScene(st.args[0])
			if err != nil {
				return err
			}
			st.scene = scene
			st.loadedAs = st.args[0]
			fmt.Printf("loaded %s: %d triangles, %d spheres, %d lights, %d materials\n",
				st.args[0], len(scene.Triangles), len(scene.Spheres), len(scene.Lights), len(scene.Materials))
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:   ":materials",
		Aliases:  []string{":m"},
		HelpText: "List the loaded scene's materials",
		Run: func(st *State) error {
			if st.scene == nil {
				return errors.New("no scene loaded")
			}
			for name := range st.scene.Materials {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:   ":lights",
		Aliases:  []string{},
		HelpText: "List the loaded scene's lights",
		Run: func(st *State) error {
			if st.scene == nil {
				return errors.New("no scene loaded")
			}
			for i, light := range st.scene.Lights {
				fmt.Printf("  %d: position=%v intensity=%v\n", i, light.Position, light.Intensity)
			}
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:       ":size",
		ExpectedArgs: []string{"<width>", "<height>"},
		HelpText:     "Set the output image size",
		Run: func(st *State) error {
			if len(st.args) < 2 {
				return errors.New("usage: :size <width> <height>")
			}
			w, err := strconv.Atoi(st.args[0])
			if err != nil {
				return err
			}
			h, err := strconv.Atoi(st.args[1])
			if err != nil {
				return err
			}
			from, to := st.cam.LookFrom, st.cam.LookTo
			fov := st.cam.Fov
			st.cam = rt.NewCameraOptions(w, h)
			st.cam.LookFrom, st.cam.LookTo, st.cam.Fov = from, to, fov
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:       ":mode",
		ExpectedArgs: []string{"<full|normal|depth>"},
		HelpText:     "Set the render mode",
		Run: func(st *State) error {
			if len(st.args) < 1 {
				return errors.New("usage: :mode <full|normal|depth>")
			}
			st.opts.Mode = rt.RenderMode(st.args[0])
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:       ":render",
		Aliases:      []string{":r"},
		ExpectedArgs: []string{"<out.png>"},
		HelpText:     "Render the loaded scene to a PNG file",
		Run: func(st *State) error {
			if st.scene == nil {
				return errors.New("no scene loaded")
			}
			if len(st.args) < 1 {
				return errors.New("usage: :render <out.png>")
			}
			img, err := rt.RenderScene(st.scene, st.cam, st.opts)
			if err != nil {
				return err
			}
			if err := img.Write(st.args[0]); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", st.args[0])
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:   "help",
		Aliases:  []string{":help", ":h"},
		HelpText: "Prints this help text",
		Run:      showHelp,
	})
	registerCommand(&Command{
		Symbol:   ":quit",
		Aliases:  []string{":q"},
		HelpText: "Exit the shell",
		Run: func(st *State) error {
			return errQuit
		},
	})

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return
			}
			log.Fatalf("readline error: %v", err)
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		args := parseCommandArgs(line)
		if len(args) == 0 {
			continue
		}
		cmd := commandLookup[args[0]]
		if cmd == nil {
			fmt.Printf("Unknown command: %v\n", args[0])
			continue
		}
		state.args = args[1:]
		state.commands = commands
		err = cmd.Run(state)
		if errors.Is(err, errQuit) {
			return
		}
		if err != nil {
			fmt.Printf("command error: %v\n", err)
		}
	}
}

func showHelp(st *State) error {
	usageHelp := make([]string, len(st.commands))
	maxLen := 0
	for i, command := range st.commands {
		parts := []string{command.Symbol}
		parts = append(parts, command.Aliases...)
		parts = append(parts, command.ExpectedArgs...)
		usageHelp[i] = strings.Join(parts, " ")
		maxLen = max(maxLen, len(usageHelp[i]))
	}
	fmt.Printf("Commands:\n")
	for i, command := range st.commands {
		fmt.Printf("  %-*s : %s\n", maxLen, usageHelp[i], command.HelpText)
	}
	return nil
}

func readlineHistoryFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("user home dir error: %v\n", err)
		return ""
	}
	return filepath.Join(home, ".sceneshell_history")
}

func parseCommandArgs(line string) []string {
	var args []string
	var start int
	for i := range line {
		curr := line[i]
		if strings.IndexByte(" \t\n\r", curr) != -1 {
			if start < i {
				args = append(args, line[start:i])
			}
			start = i + 1
		}
	}
	if start < len(line) {
		args = append(args, line[start:])
	}
	return args
}
