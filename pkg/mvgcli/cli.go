// Package mvgcli holds the commands of the mvg command line tool.
package mvgcli

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/mattn/go-isatty"
	"github.com/travigo/mvg/pkg/config"
	"github.com/travigo/mvg/pkg/display"
	"github.com/travigo/mvg/pkg/mvg"
	"github.com/urfave/cli/v2"
)

// Runtime is everything a command needs, built once from the loaded config.
type Runtime struct {
	Config  *config.Config
	Client  *mvg.Client
	Printer *display.Printer
	Out     io.Writer

	// Interactive enables spinners. Off when stdout is not a terminal.
	Interactive bool
	Now         func() time.Time
}

func NewRuntime(cfg *config.Config, out io.Writer) *Runtime {
	interactive := false
	if file, ok := out.(*os.File); ok {
		interactive = isatty.IsTerminal(file.Fd())
	}

	return &Runtime{
		Config:      cfg,
		Client:      mvg.NewClient(cfg.ClientOptions()...),
		Printer:     display.NewPrinter(out, cfg.ColorOption),
		Out:         out,
		Interactive: interactive,
		Now:         time.Now,
	}
}

// withSpinner runs action behind a spinner when attached to a terminal.
func (r *Runtime) withSpinner(title string, action func()) error {
	if !r.Interactive {
		action()
		return nil
	}

	return spinner.New().
		Title(title).
		Action(action).
		Run()
}

func RegisterCLI(runtime *Runtime) []*cli.Command {
	return []*cli.Command{
		stationsCommand(runtime),
		departuresCommand(runtime),
		routeCommand(runtime),
		nearbyCommand(runtime),
		interruptionsCommand(runtime),
	}
}
