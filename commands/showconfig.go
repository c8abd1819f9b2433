package commands

import (
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/hobeone/pepfeed/config"
	"github.com/spf13/cobra"
)

// MakeCmdShowConfig returns the command that dumps the effective config.
func MakeCmdShowConfig() *cobra.Command {
	cmd := &cobra.Command{
		Run:   runShowConfig,
		Use:   "showconfig",
		Short: "Shows the current config settings",
		Long: `
		Shows the current config settings, after defaults, the config file and
		PEPFEED_* environment variables are applied.
		`,
	}
	return cmd
}

// ShowConfigCommand prints a Config for debugging.
type ShowConfigCommand struct {
	Config *config.Config
	Out    io.Writer
}

func runShowConfig(cmd *cobra.Command, args []string) {
	cfg, _ := commonInit()

	su := NewShowConfigCommand(cfg, cmd.OutOrStdout())
	su.ShowConfig()
}

// NewShowConfigCommand returns a ShowConfigCommand writing to out.
func NewShowConfigCommand(cfg *config.Config, out io.Writer) *ShowConfigCommand {
	return &ShowConfigCommand{
		Config: cfg,
		Out:    out,
	}
}

// ShowConfig dumps the config to Out.
func (s *ShowConfigCommand) ShowConfig() {
	spew.Fdump(s.Out, s.Config)
}
