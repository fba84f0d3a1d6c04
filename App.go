package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"go.alis.build/alog"
	"io"
	"net/http"
	"time"
)

const ExitCodeMainError = 1
const ExitCodeConfigError = 2

const shutdownTimeout = time.Second * 5

// RunApp serves until ctx is cancelled, then shuts the server down and closes the store.
func RunApp(ctx context.Context, config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	level, _ := config.AlogLevel()
	alog.SetLevel(level)
	gin.SetMode(gin.ReleaseMode)

	serviceContainer, err := BuildServiceContainer(config)
	if err != nil {
		return err
	}
	defer serviceContainer.Store.Close()

	server := &http.Server{
		Addr:    config.ListenAddress,
		Handler: serviceContainer.Router,
	}

	serveErr := make(chan error, 1)
	go func() {
		alog.Infof(ctx, "listening on %s with %s repository", config.ListenAddress, config.Repository)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	alog.Infof(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err = <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func HandleExitError(errStream io.Writer, err error) int {
	if err == nil {
		return 0
	}

	_, _ = fmt.Fprintln(errStream, err)
	if errors.Is(err, ConfigError) {
		return ExitCodeConfigError
	}
	return ExitCodeMainError
}
