package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/hobeone/pepfeed/feed"
	"github.com/hobeone/pepfeed/pep"
	"github.com/spf13/cobra"
)

type showCommand struct {
	Out   io.Writer
	Paths []string
}

// MakeCmdShow returns the command that prints what pepfeed reads from
// individual PEP files.
func MakeCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show PEPFILE...",
		Short: "Show the feed metadata parsed from PEP files",
		Long: `
		Parse one or more PEP sources and print the fields used in the feed.

		Example:
		show peps/pep-0008.rst peps/pep-0020.rst
		`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			commonInit()
			sc := &showCommand{Out: cmd.OutOrStdout(), Paths: args}
			if err := sc.show(); err != nil {
				PrintErrorAndExit(err.Error())
			}
		},
	}
	return cmd
}

func (sc *showCommand) show() error {
	for i, p := range sc.Paths {
		d, err := pep.Load(p)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(sc.Out)
		}
		fmt.Fprintf(sc.Out, "PEP %d: %s\n", d.Number, d.Title)
		fmt.Fprintf(sc.Out, "  Path: %s\n", d.Path)
		fmt.Fprintf(sc.Out, "  Authors: %s\n", strings.Join(d.Authors, ", "))
		fmt.Fprintf(sc.Out, "  Status: %s\n", d.Status)
		fmt.Fprintf(sc.Out, "  Type: %s\n", d.Type)
		fmt.Fprintf(sc.Out, "  Created: %s\n", feed.FormatRFC2822(d.Created))
		fmt.Fprintf(sc.Out, "  Abstract: %s\n", d.Abstract)
	}
	return nil
}
