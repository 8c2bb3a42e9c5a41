package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/uptalent/uptalent-server/internal/logger"
	"github.com/uptalent/uptalent-server/internal/model"
	"github.com/uptalent/uptalent-server/internal/service"
)

const (
	defaultPage = 0
	defaultSize = 9

	maxUploadBytes = 10 << 20
)

// TalentService defines the talent business operations.
type TalentService interface {
	List(ctx context.Context, page, size int) ([]model.Talent, int, error)
	Register(ctx context.Context, reg service.Registration) (string, error)
	Authenticate(ctx context.Context, login service.Login) (string, error)
	Profile(ctx context.Context, id int64) (model.Talent, bool, error)
	Update(ctx context.Context, id int64, edit service.Edit) (model.Talent, error)
	Delete(ctx context.Context, id int64) error
	UploadMedia(ctx context.Context, id int64, kind service.MediaKind, reader io.Reader, size int64, contentType string) (model.Talent, error)
	OpenMedia(ctx context.Context, key string) (io.ReadCloser, string, error)
}

// Talent handles the HTTP endpoints for talent profiles.
type Talent struct {
	service TalentService
	logger  *logger.Logger
}

// NewTalent creates a new Talent handler.
func NewTalent(service TalentService, logger *logger.Logger) *Talent {
	return &Talent{
		service: service,
		logger:  logger,
	}
}

// List returns one page of talents ordered newest-first.
func (h *Talent) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", defaultPage)
	size := queryInt(r, "size", defaultSize)
	if size == 0 {
		size = defaultSize
	}

	talents, totalPages, err := h.service.List(r.Context(), page, size)
	if err != nil {
		h.logger.Error("Talent handler: listing failed",
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Page[GeneralInfo]{
		Content:    toGeneralInfos(talents),
		TotalPages: totalPages,
	})
}

// Register creates a new talent profile and returns a token for it.
func (h *Talent) Register(w http.ResponseWriter, r *http.Request) {
	var req RegistrationRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, err)
		return
	}

	jwtToken, err := h.service.Register(r.Context(), service.Registration{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Password:  req.Password,
		Skills:    req.Skills,
	})
	if err != nil {
		h.logger.Error("Talent handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Talent handler: registration completed",
		"email", req.Email)

	writeJSON(w, http.StatusCreated, AuthResponse{JWTToken: jwtToken})
}

// Login authenticates a talent and returns a fresh token.
func (h *Talent) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, err)
		return
	}

	jwtToken, err := h.service.Authenticate(r.Context(), service.Login{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error("Talent handler: login failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Talent handler: login completed",
		"email", req.Email)

	writeJSON(w, http.StatusOK, AuthResponse{JWTToken: jwtToken})
}

// Profile returns a talent profile: the extended own shape for the
// owner, the public shape for anyone else.
func (h *Talent) Profile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	talent, own, err := h.service.Profile(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	if own {
		writeJSON(w, http.StatusOK, toOwnProfile(talent))
		return
	}
	writeJSON(w, http.StatusOK, toProfile(talent))
}

// Update applies a partial profile edit for the owner.
func (h *Talent) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req EditRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, err)
		return
	}

	talent, err := h.service.Update(r.Context(), id, service.Edit{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Skills:    req.Skills,
		Birthday:  req.ParsedBirthday(),
		Location:  req.Location,
		AboutMe:   req.AboutMe,
	})
	if err != nil {
		h.logger.Error("Talent handler: update failed",
			"talent_id", id,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOwnProfile(talent))
}

// Delete removes a talent profile for its owner.
func (h *Talent) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("Talent handler: delete failed",
			"talent_id", id,
			"error", err.Error())
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadAvatar stores a new avatar image for the owner.
func (h *Talent) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	h.uploadMedia(w, r, service.MediaAvatar)
}

// UploadBanner stores a new banner image for the owner.
func (h *Talent) UploadBanner(w http.ResponseWriter, r *http.Request) {
	h.uploadMedia(w, r, service.MediaBanner)
}

func (h *Talent) uploadMedia(w http.ResponseWriter, r *http.Request, kind service.MediaKind) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Message: "invalid multipart body"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Message: "file field is required"})
		return
	}
	defer file.Close()

	talent, err := h.service.UploadMedia(r.Context(), id, kind, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		h.logger.Error("Talent handler: media upload failed",
			"talent_id", id,
			"kind", string(kind),
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOwnProfile(talent))
}

// File streams a stored media object.
func (h *Talent) File(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	reader, contentType, err := h.service.OpenMedia(r.Context(), key)
	if err != nil {
		handleError(w, err)
		return
	}
	defer reader.Close()

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Error("Talent handler: file streaming failed",
			"key", key,
			"error", err.Error())
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Message: "invalid request body"})
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Message: "invalid talent id"})
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
