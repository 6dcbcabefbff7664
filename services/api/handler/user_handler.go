package handler

import (
	"net/http"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/auth"
	model "auction-house/internal/models"
	user "auction-house/internal/userService"
	"auction-house/services/api/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service UserServiceInterface
	issuer  TokenIssuer
}

func NewUserHandler(service UserServiceInterface, issuer TokenIssuer) *UserHandler {
	return &UserHandler{service: service, issuer: issuer}
}

// RegisterHandler handles POST /users
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if !helpers.BindJSON(c, "RegisterHandler", &req) {
		helpers.RespondError(c, "RegisterHandler", auctionerrors.ErrInvalidRequest, nil)
		return
	}

	u, err := h.service.Register(c.Request.Context(), &user.Registration{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		LastName: req.LastName,
	})
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", err, map[string]any{"email": req.Email})
		return
	}

	h.startSession(c, "RegisterHandler", http.StatusCreated, u)
}

// AuthenticateHandler handles POST /users/authenticate
func (h *UserHandler) AuthenticateHandler(c *gin.Context) {
	var req helpers.AuthenticateRequest
	if !helpers.BindJSON(c, "AuthenticateHandler", &req) {
		helpers.RespondError(c, "AuthenticateHandler", auctionerrors.ErrInvalidRequest, nil)
		return
	}

	u, err := h.service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "AuthenticateHandler", err, map[string]any{"email": req.Email})
		return
	}

	h.startSession(c, "AuthenticateHandler", http.StatusOK, u)
}

// MeHandler handles GET /users/me
func (h *UserHandler) MeHandler(c *gin.Context) {
	actor, _ := auth.CurrentUserID(c)

	u, err := h.service.GetUser(c.Request.Context(), actor)
	if err != nil {
		helpers.RespondError(c, "MeHandler", err, map[string]any{"user_id": actor})
		return
	}

	utils.JSONResponse(c, http.StatusOK, u)
}

// startSession issues a token for u, sets the session cookie and writes both
func (h *UserHandler) startSession(c *gin.Context, handlerName string, status int, u model.User) {
	token, err := h.issuer.Issue(u.ID)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"user_id": u.ID})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookie, token, int(h.issuer.TTL().Seconds()), "/", "", false, true)

	utils.JSONResponse(c, status, helpers.SessionResponse{Token: token, User: u})
	helpers.LogSuccess(handlerName, "session started", map[string]any{"user_id": u.ID})
}
