package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/mockdata"
)

var dataDir string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write demo billing and settlement data with injected anomalies",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(log.InfoLevel)

		salesPath, bankPath, err := mockdata.Generate(dataDir)
		if err != nil {
			return err
		}
		logger.Info("Generated", "path", salesPath)
		logger.Info("Generated", "path", bankPath)
		logger.Info("Anomaly injection summary",
			"missing", "TXN-1005",
			"variance", "TXN-1003 (5000 billed, 4500 received)",
			"control", "TXN-1008")
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&dataDir, "data-dir", "data", "Directory for the generated CSV files")
	rootCmd.AddCommand(generateCmd)
}
