// internal/cli/root.go
package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/sysfacts/sysfacts/pkg/config"
)

var (
	cfgFile   string
	iface     string
	debug     bool
	longShell bool
	cfg       *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sysfacts",
	Short: "System information readout",
	Long: `sysfacts - System information readout

Reads battery, kernel, memory, processor, network and package manager
facts from the running host and prints them in one place.`,
	Version: "0.1.0",
	RunE:    runShow,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/sysfacts/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&iface, "interface", "", "network interface to query")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&longShell, "long-shell", false, "report the shell by its full path")

	// Add commands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(packagesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// Override config with flags
	if iface != "" {
		cfg.Interface = iface
	}
	if debug {
		cfg.Debug = true
	}
	if longShell {
		cfg.LongShell = true
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(os.Stderr, "sysfacts: ", log.LstdFlags)
	}
}
