package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Flag controlling logging verbosity
var Verbose bool

// Flag telling pepfeed which config file to use
var ConfigFile string

func init() {
	PepfeedCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false,
		"log verbose information")

	PepfeedCmd.PersistentFlags().StringVar(&ConfigFile, "config_file", "", "Config file to use.")

	PepfeedCmd.AddCommand(MakeCmdGenerate())
	PepfeedCmd.AddCommand(MakeCmdShow())
	PepfeedCmd.AddCommand(MakeCmdInspect())
	PepfeedCmd.AddCommand(MakeCmdShowConfig())
	PepfeedCmd.AddCommand(versionCmd)
}

// PepfeedCmd is the root command, but doesn't do anything.
var PepfeedCmd = &cobra.Command{
	Use:   "pepfeed",
	Short: "pepfeed builds the Newest Python PEPs RSS feed",
	Long:  "Reads a directory of PEP sources and writes an RSS feed of the newest ones.",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pepfeed",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "pepfeed v0.1 -- HEAD")
	},
}
