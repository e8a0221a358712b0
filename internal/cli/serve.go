package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/layerlens/layerlens/pkg/store"
)

// graphReporter is the slice of the store importer the HTTP API needs.
type graphReporter interface {
	Verify(ctx context.Context, namespace string) (*store.Report, error)
	Namespaces(ctx context.Context) ([]string, error)
}

// serveCommand creates the serve command exposing the verification
// reporter over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		conn connFlags
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve verification reports over HTTP",
		Long: `Serve a read-only HTTP API over the graph store:

  GET /healthz             liveness probe
  GET /api/verify          counts, optionally ?namespace=...
  GET /api/namespaces      distinct namespaces

The server shuts down cleanly on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := conn.resolve()
			if err != nil {
				return err
			}

			client, err := store.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			srv := &http.Server{
				Addr:              addr,
				Handler:           newRouter(store.NewImporter(client, c.Logger)),
				ReadHeaderTimeout: 5 * time.Second,
			}

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			c.Logger.Info("serving verification API", "addr", addr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return ctx.Err()
		},
	}

	conn.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":8181", "listen address")

	return cmd
}

// newRouter builds the HTTP API over a reporter.
func newRouter(rep graphReporter) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/verify", func(w http.ResponseWriter, req *http.Request) {
		report, err := rep.Verify(req.Context(), req.URL.Query().Get("namespace"))
		if err != nil {
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, report)
	})

	r.Get("/api/namespaces", func(w http.ResponseWriter, req *http.Request) {
		namespaces, err := rep.Namespaces(req.Context())
		if err != nil {
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string][]string{"namespaces": namespaces})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
