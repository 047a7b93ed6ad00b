package server

import (
	"context"
	"net/http"

	"github.com/jacksonlee411/Leadership-Explorer/internal/routing"
	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/services"
	"github.com/jacksonlee411/Leadership-Explorer/pkg/httperr"
	"go.uber.org/zap"
)

const (
	msgFetchBodies    = "Failed to fetch bodies"
	msgFetchOfficials = "Failed to fetch officials"
	msgFetchLeaders   = "Failed to fetch leaders"
)

type directoryAPI struct {
	facade services.DirectoryFacade
	logger *zap.Logger
}

func (a directoryAPI) handleBodies(w http.ResponseWriter, r *http.Request) {
	serveJSON(a, w, r, msgFetchBodies, a.facade.ListBodies)
}

func (a directoryAPI) handleOfficials(w http.ResponseWriter, r *http.Request) {
	serveJSON(a, w, r, msgFetchOfficials, a.facade.ListOfficials)
}

func (a directoryAPI) handleLeaders(w http.ResponseWriter, r *http.Request) {
	serveJSON(a, w, r, msgFetchLeaders, a.facade.ListLeaders)
}

func (a directoryAPI) handleFacets(w http.ResponseWriter, r *http.Request) {
	serveJSON(a, w, r, msgFetchOfficials, a.facade.Facets)
}

func serveJSON[T any](a directoryAPI, w http.ResponseWriter, r *http.Request, public string, load func(context.Context) (T, error)) {
	v, err := load(r.Context())
	if err != nil {
		a.writeInternalError(w, r, httperr.NewInternal(public, err))
		return
	}
	routing.WriteJSON(w, http.StatusOK, v)
}

func (a directoryAPI) writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	ie, ok := httperr.AsInternal(err)
	if !ok {
		ie = &httperr.InternalError{Public: "internal error", Err: err}
	}
	cause := err
	if ie.Err != nil {
		cause = ie.Err
	}
	fields := append([]zap.Field{
		zap.String("path", r.URL.Path),
		zap.String("request_id", requestIDFromContext(r.Context())),
	}, dbErrorFields(cause)...)
	a.logger.Error(ie.Public, fields...)
	routing.WriteError(w, r, routing.RouteClassAPI, http.StatusInternalServerError, ie.Public, ie.Details())
}
