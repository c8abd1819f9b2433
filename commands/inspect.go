package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/hobeone/pepfeed/feed"
	"github.com/spf13/cobra"
)

type inspectCommand struct {
	Out  io.Writer
	Path string
}

// MakeCmdInspect returns a command that parses a feed file and lists what
// a feed reader would see.
func MakeCmdInspect() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect FEEDFILE",
		Short: "Parse a generated feed and list its items",
		Long: `
		Parse an RSS or Atom file the way a feed reader would.

		Example:
		inspect build/peps.rss
		`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			commonInit()
			ic := &inspectCommand{Out: cmd.OutOrStdout(), Path: args[0]}
			if err := ic.inspect(); err != nil {
				PrintErrorAndExit(err.Error())
			}
		},
	}
	return cmd
}

func (ic *inspectCommand) inspect() error {
	b, err := os.ReadFile(ic.Path)
	if err != nil {
		return err
	}
	f, err := feed.ParseFeed(b)
	if err != nil {
		return fmt.Errorf("%s: %w", ic.Path, err)
	}

	fmt.Fprintf(ic.Out, "Found %d items in %s feed:\n", len(f.Items), f.FeedType)
	fmt.Fprintf(ic.Out, "  Title: %s\n", f.Title)
	fmt.Fprintf(ic.Out, "  Link: %s\n", f.Link)
	fmt.Fprintf(ic.Out, "  Updated: %s\n", f.Updated)
	for i, item := range f.Items {
		fmt.Fprintf(ic.Out, "%d)  %s\n", i, item.Title)
		fmt.Fprintf(ic.Out, "  Link  %s\n", item.Link)
		fmt.Fprintf(ic.Out, "  Published  %s\n", item.Published)
	}
	return nil
}
