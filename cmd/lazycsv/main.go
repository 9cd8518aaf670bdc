package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
)

func main() {
	var cpuProfile string
	var profileFile *os.File

	rootCmd := &cobra.Command{
		Use:   "lazycsv",
		Short: "Zero-copy CSV scanning tools",
		Long: `lazycsv inspects delimited-text files using a zero-copy scanner.

Input files are memory-mapped where the platform allows it, and files with
an .lz4 extension are decompressed transparently. Use "-" to read from
stdin.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cpuProfile == "" {
				return nil
			}
			f, err := os.Create(cpuProfile)
			if err != nil {
				return fmt.Errorf("create profile: %w", err)
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				f.Close()
				return fmt.Errorf("start profile: %w", err)
			}
			profileFile = f
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if profileFile != nil {
				pprof.StopCPUProfile()
				profileFile.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "write a CPU profile to this file")

	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newCutCmd())
	rootCmd.AddCommand(newCheckCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
