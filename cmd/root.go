package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solverity/solverity/cmd/verify"
	"github.com/solverity/solverity/cmd/version"
	"github.com/solverity/solverity/pkg/shared/config"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "solverity [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Solverity is a driver for formal verification of smart contracts.",
		Long: `Solverity drives an external verification toolchain: it compiles a contract
	into an annotated Boogie program, runs the Boogie verifier with a chosen SMT
	solver under a deadline, and reports the diagnostics at their original source
	positions.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(verify.VerifyCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

func Execute() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	verify.Init(AppConfig)
}
