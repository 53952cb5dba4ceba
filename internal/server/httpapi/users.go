package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okunevd/streamhub/internal/common"
	"github.com/okunevd/streamhub/internal/server/models"
	"github.com/okunevd/streamhub/internal/server/services"
)

// maxUploadMemory bounds the in-memory part of multipart parsing; larger
// files spill to disk.
const maxUploadMemory = 32 << 20

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		s.respondError(w, r, common.ErrorInvalidInput)
		return
	}

	avatar, closeAvatar, err := formFile(r, "avatar")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	defer closeAvatar()

	cover, closeCover, err := formFile(r, "coverImage")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	defer closeCover()

	user, err := s.users.Register(r.Context(), services.RegisterParams{
		Handle:     r.FormValue("handle"),
		Email:      r.FormValue("email"),
		FullName:   r.FormValue("fullName"),
		Password:   r.FormValue("password"),
		Avatar:     avatar,
		CoverImage: cover,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusCreated, user, "user registered successfully")
}

type loginRequest struct {
	Login    string `json:"login"`
	Handle   string `json:"handle"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *loginRequest) login() string {
	for _, v := range []string{req.Login, req.Handle, req.Email} {
		if v != "" {
			return v
		}
	}
	return ""
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	user, pair, err := s.users.Login(r.Context(), req.login(), req.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.setAuthCookies(w, pair)
	s.respond(w, http.StatusOK, map[string]any{
		"user":         user,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "logged in successfully")
}

func (s *HTTPServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())
	if err := s.users.Logout(r.Context(), identity.ID); err != nil {
		s.respondError(w, r, err)
		return
	}
	s.clearAuthCookies(w)
	s.respond(w, http.StatusOK, nil, "logged out successfully")
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (s *HTTPServer) handleRefreshToken(w http.ResponseWriter, r *http.Request) {
	token := ""
	if c, err := r.Cookie(refreshTokenCookie); err == nil {
		token = c.Value
	}
	if token == "" {
		var req refreshRequest
		if err := decodeJSON(r, &req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		s.respondError(w, r, common.ErrMissingToken)
		return
	}

	pair, err := s.users.RefreshTokens(r.Context(), token)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.setAuthCookies(w, pair)
	s.respond(w, http.StatusOK, map[string]any{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "tokens refreshed successfully")
}

func (s *HTTPServer) handleGetUser(w http.ResponseWriter, r *http.Request) {
	// the guard already resolved the identity record
	identity := identityFrom(r.Context())
	s.respond(w, http.StatusOK, identity, "current user fetched successfully")
}

type updateUserRequest struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
}

func (s *HTTPServer) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	identity := identityFrom(r.Context())
	user, err := s.users.UpdateProfile(r.Context(), identity.ID, req.FullName, req.Email)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, user, "account updated successfully")
}

func (s *HTTPServer) handleUpdateAvatar(w http.ResponseWriter, r *http.Request) {
	s.handleUpdateImage(w, r, "avatar", s.users.UpdateAvatar)
}

func (s *HTTPServer) handleUpdateCoverImage(w http.ResponseWriter, r *http.Request) {
	s.handleUpdateImage(w, r, "coverImage", s.users.UpdateCoverImage)
}

func (s *HTTPServer) handleUpdateImage(w http.ResponseWriter, r *http.Request, field string,
	update func(ctx context.Context, id string, file *services.FileUpload) (*models.User, error)) {

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		s.respondError(w, r, common.ErrorInvalidInput)
		return
	}
	file, closeFile, err := formFile(r, field)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	defer closeFile()

	identity := identityFrom(r.Context())
	user, err := update(r.Context(), identity.ID, file)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, user, field+" updated successfully")
}

func (s *HTTPServer) handleChannelProfile(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")
	identity := identityFrom(r.Context())

	profile, err := s.users.GetChannelProfile(r.Context(), handle, identity.ID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, profile, "channel profile fetched successfully")
}

func (s *HTTPServer) handleWatchHistory(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())
	page, limit, offset := pagination(r)

	videos, err := s.users.GetWatchHistory(r.Context(), identity.ID, limit, offset)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{
		"videos": videos,
		"page":   page,
		"limit":  limit,
	}, "watch history fetched successfully")
}
