package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	pkgerrors "github.com/layerviz/layersvg/pkg/errors"
	"github.com/layerviz/layersvg/pkg/scene"
	"github.com/layerviz/layersvg/pkg/writer"
)

// newServeCmd creates the serve command for previewing a scene in a browser.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [scene]",
		Short: "Serve a live preview of a scene over HTTP",
		Long: `Serve starts a local HTTP server that renders the scene on every
request, so edits to the scene file show up on the next browser refresh.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8077", "listen address")
	return cmd
}

func runServe(ctx context.Context, input, addr string) error {
	logger := loggerFromContext(ctx)

	// Render once up front so obvious scene errors fail fast instead of
	// surfacing on the first request.
	if _, err := renderScene(input); err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(ctx))
	r.Get("/", servePage(input))
	r.Get("/scene.svg", serveSVG(input))

	srv := &http.Server{Addr: addr, Handler: r}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Infof("Serving %s on http://%s", input, addr)
	printInfo("Preview at %s", StyleLink.Render("http://"+addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// renderScene reloads and renders the scene file from scratch.
func renderScene(input string) (string, error) {
	layers, err := scene.Load(input)
	if err != nil {
		return "", err
	}
	return writer.Render(layers)
}

func servePage(input string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>layersvg preview</title>
<style>
body { margin: 2rem; font-family: sans-serif; background: #1c1c1c; color: #ddd; }
img { background: white; max-width: 100%%; box-shadow: 0 4px 24px rgba(0,0,0,0.5); }
</style>
</head>
<body>
<h3>%s</h3>
<img src="/scene.svg" alt="scene preview">
<p>Edit the scene file and refresh to re-render.</p>
</body>
</html>
`, input)
	}
}

func serveSVG(input string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := renderScene(input)
		if err != nil {
			http.Error(w, pkgerrors.UserMessage(err), http.StatusUnprocessableEntity)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "no-store")
		fmt.Fprint(w, doc)
	}
}

// requestLogger logs each request with method, path, status and duration.
func requestLogger(ctx context.Context) func(http.Handler) http.Handler {
	logger := loggerFromContext(ctx)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debugf("%s %s %d (%s)", r.Method, r.URL.Path, ww.Status(),
				time.Since(start).Round(time.Microsecond))
		})
	}
}
