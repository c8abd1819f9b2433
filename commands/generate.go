package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hobeone/pepfeed/config"
	"github.com/hobeone/pepfeed/feed"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type generateCommand struct {
	Config *config.Config
	Logger logrus.FieldLogger
	Output string // "-" writes to Stdout
	Stdout io.Writer
	Now    func() time.Time
}

// MakeCmdGenerate returns the command that writes the RSS feed.
func MakeCmdGenerate() *cobra.Command {
	var output, root string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the RSS feed of the newest PEPs",
		Long: `
		Reads every pep-NNNN.rst under the PEP root and writes an RSS feed of the
		most recently created ones.

		Example:
		generate --pep_root ./peps --output build/peps.rss
		`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, logger := commonInit()
			if root != "" {
				cfg.PEPs.Root = root
			}
			gc := &generateCommand{
				Config: cfg,
				Logger: logger,
				Output: output,
				Stdout: cmd.OutOrStdout(),
				Now:    time.Now,
			}
			if err := gc.generate(cmd.Context()); err != nil {
				PrintErrorAndExit(err.Error())
			}
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "File to write, - for stdout.  Defaults to output_dir/file_name from the config.")
	cmd.Flags().StringVar(&root, "pep_root", "", "Directory holding the PEP sources.  Overrides the config.")
	return cmd
}

func (gc *generateCommand) outputPath() string {
	if gc.Output != "" {
		return gc.Output
	}
	return filepath.Join(gc.Config.Feed.OutputDir, gc.Config.Feed.FileName)
}

func (gc *generateCommand) generate(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	now := gc.Now().UTC()

	path := gc.outputPath()
	if path == "-" {
		return feed.Generate(ctx, gc.Config, gc.Stdout, now, gc.Logger)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	// The feed only replaces path once it is completely written.
	tmp, err := os.CreateTemp(dir, ".peps-*.rss")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := feed.Generate(ctx, gc.Config, tmp, now, gc.Logger); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	gc.Logger.Infof("Wrote feed to %s", path)
	return nil
}
