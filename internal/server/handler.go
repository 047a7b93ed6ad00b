package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/jacksonlee411/Leadership-Explorer/internal/routing"
	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/ports"
	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/services"
	"go.uber.org/zap"
)

func NewHandler() (http.Handler, error) {
	return NewHandlerWithOptions(HandlerOptions{})
}

type HandlerOptions struct {
	Logger        *zap.Logger
	Store         ports.DirectoryStore
	AllowlistPath string
}

func NewHandlerWithOptions(opts HandlerOptions) (http.Handler, error) {
	allowlistPath := opts.AllowlistPath
	if allowlistPath == "" {
		allowlistPath = os.Getenv("ALLOWLIST_PATH")
	}
	if allowlistPath == "" {
		p, err := defaultAllowlistPath()
		if err != nil {
			return nil, err
		}
		allowlistPath = p
	}

	a, err := routing.LoadAllowlist(allowlistPath)
	if err != nil {
		return nil, err
	}

	classifier, err := routing.NewClassifier(a, "server")
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	store := opts.Store
	if store == nil {
		s, _, err := OpenStore(context.Background(), ConfigFromEnv())
		if err != nil {
			return nil, err
		}
		store = s
	}

	facade := services.NewDirectoryFacade(store)
	api := directoryAPI{facade: facade, logger: logger}
	ui := explorerUI{facade: facade, logger: logger}

	router := routing.NewRouter(classifier, logger)
	handle := func(method, path string, h http.HandlerFunc) error {
		if !classifier.Allowed(method, path) {
			return fmt.Errorf("server: %s %s missing from allowlist", method, path)
		}
		router.Handle(classifier.Classify(path), method, path, h)
		return nil
	}

	health := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}

	if err := errors.Join(
		handle(http.MethodGet, "/", ui.handlePage),
		handle(http.MethodGet, "/assets/{name}", handleAsset),
		handle(http.MethodGet, "/placeholder.svg", handlePlaceholder),
		handle(http.MethodGet, "/health", health),
		handle(http.MethodGet, "/healthz", health),
		handle(http.MethodGet, "/api/bodies", api.handleBodies),
		handle(http.MethodGet, "/api/officials", api.handleOfficials),
		handle(http.MethodGet, "/api/leaders", api.handleLeaders),
		handle(http.MethodGet, "/api/facets", api.handleFacets),
	); err != nil {
		return nil, err
	}

	return withRequestLogging(logger, router), nil
}

func defaultAllowlistPath() (string, error) {
	path := "config/routing/allowlist.yaml"
	for range 8 {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		path = filepath.Join("..", path)
	}
	return "", errors.New("server: allowlist not found")
}
