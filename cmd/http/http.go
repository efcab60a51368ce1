package http

import "github.com/spf13/cobra"

func NewHTTPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Comandos del servidor HTTP",
	}

	cmd.AddCommand(NewStartCommand())

	return cmd
}
