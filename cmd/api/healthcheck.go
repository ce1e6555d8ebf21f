package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"animals-api/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

// healthcheckCmd sirve para HEALTHCHECK de contenedores: exit 0 si /health responde ok.
// Con --deep además lista ambas colecciones.
func healthcheckCmd() *cobra.Command {
	var (
		url     string
		timeout time.Duration
		deep    bool
	)

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Consulta /health de una instancia en ejecución",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHealthcheck(cmd.Context(), url, timeout, deep, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&url, "url", "http://127.0.0.1:8080", "URL base de la API")
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Second, "timeout del request")
	cmd.Flags().BoolVar(&deep, "deep", false, "también consulta /animals y /locomotion-modes")

	return cmd
}

func runHealthcheck(ctx context.Context, baseURL string, timeout time.Duration, deep bool, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return err
	}

	body, err := c.GetText(ctx, "/health")
	if err != nil {
		return fmt.Errorf("healthcheck: %w", err)
	}
	if body != "ok" {
		return fmt.Errorf("healthcheck: unexpected body %q", body)
	}

	if !deep {
		_, _ = fmt.Fprintln(out, body)
		return nil
	}

	var animals, modes []json.RawMessage
	if err := c.GetJSON(ctx, "/animals", &animals); err != nil {
		return fmt.Errorf("healthcheck: animals: %w", err)
	}
	if err := c.GetJSON(ctx, "/locomotion-modes", &modes); err != nil {
		return fmt.Errorf("healthcheck: locomotion modes: %w", err)
	}

	_, _ = fmt.Fprintf(out, "%s animals=%d locomotion_modes=%d\n", body, len(animals), len(modes))
	return nil
}
