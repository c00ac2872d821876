// Command squares walks through the extension-method mechanism on the
// essay's Square example: a monkey-patched method, a scope-checked
// extension activated by a module binding, the shadowing that breaks
// it, and the extension set that survives the same shadowing.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/funext/internal/extend"
	"github.com/funvibe/funext/internal/object"
	"github.com/funvibe/funext/internal/scope"
)

func main() {
	cfgPath := flag.String("config", "", "path to squares.yaml")
	flag.Parse()

	cfg := DefaultConfig()
	if *cfgPath != "" {
		loaded, err := LoadConfig(*cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "squares:", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := run(os.Stdout, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "squares:", err)
		os.Exit(1)
	}
}

// newSquareClass builds the Square class with its pre-existing fallback
// hook: squares answer "snake" with "eyes" even though no such field or
// method exists. The hook is installed before any extension so the demo
// can show it surviving registration.
func newSquareClass() *object.Class {
	squareClass := object.NewClass("Square")
	squareClass.SwapGetattr(func(prev object.Resolver) object.Resolver {
		return func(inst *object.Instance, name string) (object.Object, error) {
			if name == "snake" {
				return &object.String{Value: "eyes"}, nil
			}
			return nil, object.NoAttribute(name)
		}
	})
	return squareClass
}

func getSquare(cls *object.Class, cfg *Config) *object.Instance {
	length := int64(cfg.Min + rand.Intn(cfg.Max-cfg.Min+1))
	return cls.New(map[string]object.Object{
		"length": &object.Integer{Value: length},
	})
}

// renderSquare draws an n×n block of the fill character.
func renderSquare(length int64, fill string) string {
	row := strings.Repeat(fill, int(length))
	rows := make([]string, length)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func colorize(s string, cfg *Config, out io.Writer) string {
	if cfg.Color == "" {
		return s
	}
	f, ok := out.(*os.File)
	if !ok {
		return s
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return s
	}
	return "\x1b[" + ansiColors[cfg.Color] + "m" + s + "\x1b[0m"
}

func run(out io.Writer, cfg *Config) error {
	squareClass := newSquareClass()

	drawSquare := &object.Builtin{
		Name: "draw",
		Fn: func(args ...object.Object) (object.Object, error) {
			inst := args[0].(*object.Instance)
			length := inst.Fields["length"].(*object.Integer).Value
			fmt.Fprintln(out, colorize(renderSquare(length, cfg.Fill), cfg, out))
			return &object.Nil{}, nil
		},
	}
	outlineSquare := &object.Builtin{
		Name: "outline",
		Fn: func(args ...object.Object) (object.Object, error) {
			inst := args[0].(*object.Instance)
			length := inst.Fields["length"].(*object.Integer).Value
			fmt.Fprintf(out, "%d x %d square\n", length, length)
			return &object.Nil{}, nil
		},
	}

	if _, err := extend.Register(squareClass, "draw", drawSquare); err != nil {
		return err
	}

	extensions := extend.NewExtensionSet("SquareExtensions")
	extensions.Define("outline", outlineSquare)
	if err := extend.Install(squareClass, extensions); err != nil {
		return err
	}

	mod := scope.NewModule("main")
	mod.Bind("draw", drawSquare)
	mod.Bind("SquareExtensions", extensions)

	var runErr error
	mod.Call("main", func(f *scope.Frame) {
		square := getSquare(squareClass, cfg)

		// The extension is in scope at module level.
		drawn, err := square.GetAttr("draw")
		if err != nil {
			runErr = err
			return
		}
		if _, err := drawn.(*object.BoundMethod).Call(); err != nil {
			runErr = err
			return
		}

		// The pre-existing hook still answers.
		snake, err := square.GetAttr("snake")
		if err != nil {
			runErr = err
			return
		}
		fmt.Fprintf(out, "snake -> %s\n", snake.Inspect())

		// Rebinding the name locally shadows the extension.
		f.Bind("draw", &object.Boolean{Value: true})
		if _, err := square.GetAttr("draw"); errors.Is(err, object.ErrNoAttribute) {
			fmt.Fprintln(out, "So fragile!")
		}

		// The extension set only checks its own name, so shadowing
		// "outline" changes nothing.
		f.Bind("outline", &object.Boolean{Value: true})
		outline, err := square.GetAttr("outline")
		if err != nil {
			runErr = err
			return
		}
		if _, err := outline.(*object.BoundMethod).Call(); err != nil {
			runErr = err
		}
	})
	return runErr
}
