// @title Animales + Desplazamientos API
// @version 1.0
// @description CRUD en memoria de animales y sus modos de desplazamiento.
// @BasePath /
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Se setea en build via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "animals-api",
		Short:   "API HTTP de animales y modos de desplazamiento (estado en memoria)",
		Version: version,
		// Sin subcomando => serve.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, serveFlags{})
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(healthcheckCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
