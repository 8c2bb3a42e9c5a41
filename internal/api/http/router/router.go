package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/uptalent/uptalent-server/internal/api/http/handler"
	"github.com/uptalent/uptalent-server/internal/api/http/middleware"
	"github.com/uptalent/uptalent-server/internal/logger"
	"github.com/uptalent/uptalent-server/internal/model"
)

// Router wires the talent endpoints with the authentication pipeline.
type Router struct {
	talentService  handler.TalentService
	verifier       middleware.TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	talentService handler.TalentService,
	verifier middleware.TokenVerifier,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		talentService:  talentService,
		verifier:       verifier,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the route table. The authentication gate runs on
// every request; guards protect only the routes that need an identity.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.verifier, r.contextManager, r.logger)
	guard := middleware.NewGuard(r.contextManager)

	h := handler.NewTalent(r.talentService, r.logger)

	root := mux.NewRouter()
	root.Use(logging.Handle, authenticate.Handle)

	api := root.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/talents", h.List).Methods(http.MethodGet)
	api.HandleFunc("/talents", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/talents/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/files/{key:.+}", h.File).Methods(http.MethodGet)

	protect := guard.RequireAuthenticated
	api.Handle("/talents/{id:[0-9]+}", protect(http.HandlerFunc(h.Profile))).Methods(http.MethodGet)
	api.Handle("/talents/{id:[0-9]+}", protect(http.HandlerFunc(h.Update))).Methods(http.MethodPatch)
	api.Handle("/talents/{id:[0-9]+}", protect(http.HandlerFunc(h.Delete))).Methods(http.MethodDelete)
	api.Handle("/talents/{id:[0-9]+}/avatar", protect(http.HandlerFunc(h.UploadAvatar))).Methods(http.MethodPost)
	api.Handle("/talents/{id:[0-9]+}/banner", protect(http.HandlerFunc(h.UploadBanner))).Methods(http.MethodPost)

	return root
}
