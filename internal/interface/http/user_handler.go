package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/edulearn/ai-teacher-api/internal/application"
	"github.com/edulearn/ai-teacher-api/internal/interface/middleware"
	"github.com/edulearn/ai-teacher-api/pkg/response"
	"github.com/edulearn/ai-teacher-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password" binding:"omitempty,pwd"`
}

// Me GET /api/v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		response.Error(c, http.StatusUnauthorized, "could not validate credentials", nil)
		return
	}
	response.Success(c, http.StatusOK, userJSON(u), "profile", nil)
}

// UpdateMe PUT /api/v1/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		response.Error(c, http.StatusUnauthorized, "could not validate credentials", nil)
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	updated, err := h.Svc.UpdateProfile(c.Request.Context(), u.ID, application.UpdateProfileInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, userJSON(updated), "profile updated", nil)
}

// GetByID GET /api/v1/users/:id — self or superuser only.
func (h *UserHandler) GetByID(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	u, err := h.Svc.GetUser(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, userJSON(u), "user", nil)
}

// List GET /api/v1/users — superuser only (guarded in the route module).
func (h *UserHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	users, err := h.Svc.ListUsers(c.Request.Context(), offset, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, userJSON(u))
	}
	response.Success(c, http.StatusOK, out, "users", gin.H{"offset": offset, "limit": limit, "count": len(out)})
}
