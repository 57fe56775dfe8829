package mvgcli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
)

func interruptionsCommand(runtime *Runtime) *cli.Command {
	return &cli.Command{
		Name:  "interruptions",
		Usage: "print the current service interruptions as JSON",
		Action: func(c *cli.Context) error {
			raw, err := runtime.Client.Interruptions(c.Context)
			if err != nil {
				return err
			}

			var indented bytes.Buffer
			if err := json.Indent(&indented, raw, "", "  "); err != nil {
				return err
			}

			_, err = fmt.Fprintln(runtime.Out, indented.String())
			return err
		},
	}
}
