package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/AlexZinkM/pagekit/internal/model"
	"github.com/AlexZinkM/pagekit/internal/store"

	"go.uber.org/zap"
)

// UserHandler serves the user endpoints backed by a UserStore
type UserHandler struct {
	store  *store.UserStore
	logger *zap.Logger
	now    func() time.Time
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s *store.UserStore, logger *zap.Logger) *UserHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserHandler{store: s, logger: logger, now: time.Now}
}

// writeJSON writes v with the given status.
// Application errors are sent with 200 so that clients read the "error" field.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError sends an application error as a 200 body, or a bare 500 for anything else
func (h *UserHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		writeJSON(w, http.StatusOK, apiErr)
		return
	}
	h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Ping handles GET /api/ping
// @Summary      Health check
// @Description  Returns pong and the server time
// @Tags         system
// @Produce      json
// @Success      200  {object}  model.PingResponse
// @Router       /api/ping [get]
func (h *UserHandler) Ping(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, model.PingResponse{Pong: true, Time: h.now().UTC()})
}

// Users handles GET and POST /api/users
func (h *UserHandler) Users(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.ListUsers(w, r)
	case http.MethodPost:
		h.Register(w, r)
	default:
		http.Error(w, "Method not allowed. Should be GET or POST", http.StatusMethodNotAllowed)
	}
}

// ListUsers handles GET /api/users
// @Summary      List users
// @Description  Lists registered users, newest first
// @Tags         users
// @Produce      json
// @Param        page  query     int  false  "Page index (1-based)"
// @Param        size  query     int  false  "Page size (default 10)"
// @Success      200   {object}  model.UsersResponse
// @Router       /api/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		writeJSON(w, http.StatusOK, model.ValueError("page", "Invalid page index."))
		return
	}
	size, err := queryInt(r, "size", 10)
	if err != nil || size < 1 || size > 100 {
		writeJSON(w, http.StatusOK, model.ValueError("size", "Page size must be between 1 and 100."))
		return
	}
	writeJSON(w, http.StatusOK, h.store.List(page, size))
}

// GetUser handles GET /api/users/{id}
// @Summary      Get user
// @Description  Gets a user by id; unknown ids yield value:notfound
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  model.User
// @Failure      200  {object}  model.APIError
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	user, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Register handles POST /api/users
// @Summary      Register user
// @Description  Registers a user from form fields; invalid fields yield value:invalid with data set to the field
// @Tags         users
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        name      formData  string  true  "Display name"
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      200       {object}  model.User
// @Failure      200       {object}  model.APIError
// @Router       /api/users [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	user, err := h.store.Register(model.RegisterRequest{
		Name:     r.PostForm.Get("name"),
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.logger.Info("user registered", zap.String("id", user.ID))
	writeJSON(w, http.StatusOK, user)
}

// Authenticate handles POST /api/authenticate
// @Summary      Authenticate
// @Description  Checks email and password; failures yield auth:failed
// @Tags         users
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        email     formData  string  true   "Email"
// @Param        password  formData  string  true   "Password"
// @Param        remember  formData  bool    false  "Remember me"
// @Success      200       {object}  model.User
// @Failure      200       {object}  model.APIError
// @Router       /api/authenticate [post]
func (h *UserHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	remember, _ := strconv.ParseBool(r.PostForm.Get("remember"))
	user, err := h.store.Authenticate(model.AuthenticateRequest{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
		Remember: remember,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}
