package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/saludmaterna/maternidad_backend/cmd/http"
	systemcmd "github.com/saludmaterna/maternidad_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "maternidad",
	Short: "Backend del sistema de registros clínicos de maternidad.",
	Long: `Servicio de registros clínicos obstétricos: fichas de madres, partos,
recién nacidos, diagnósticos CIE-10, defunciones y referencias documentales,
con control de acceso por roles y auditoría de cada operación.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
