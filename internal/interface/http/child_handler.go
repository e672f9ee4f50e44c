package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/edulearn/ai-teacher-api/internal/application"
	"github.com/edulearn/ai-teacher-api/internal/domain/repository"
	"github.com/edulearn/ai-teacher-api/internal/interface/middleware"
	"github.com/edulearn/ai-teacher-api/pkg/response"
	"github.com/edulearn/ai-teacher-api/pkg/validation"
)

type ChildHandler struct {
	Svc    *application.ChildService
	Logger *logrus.Logger
}

func NewChildHandler(svc *application.ChildService, logger *logrus.Logger) *ChildHandler {
	return &ChildHandler{Svc: svc, Logger: logger}
}

type createChildRequest struct {
	Name          string         `json:"name" binding:"required"`
	Grade         string         `json:"grade" binding:"required"`
	Subjects      []string       `json:"subjects" binding:"required,min=1,dive,required"`
	LearningStyle *string        `json:"learning_style"`
	Preferences   map[string]any `json:"preferences"`
}

// updateChildRequest is a partial update: absent fields stay nil and are
// left untouched. A present-but-empty subjects array is rejected.
type updateChildRequest struct {
	Name          *string        `json:"name"`
	Grade         *string        `json:"grade"`
	Subjects      []string       `json:"subjects"`
	LearningStyle *string        `json:"learning_style"`
	Preferences   map[string]any `json:"preferences"`
}

func ownerID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserIDKey)
}

// Create POST /api/v1/children
func (h *ChildHandler) Create(c *gin.Context) {
	var req createChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	child, err := h.Svc.Create(c.Request.Context(), ownerID(c), repository.ChildCreate{
		Name:          req.Name,
		Grade:         req.Grade,
		Subjects:      req.Subjects,
		LearningStyle: req.LearningStyle,
		Preferences:   req.Preferences,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, child, "child profile created", nil)
}

// List GET /api/v1/children
func (h *ChildHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	children, err := h.Svc.List(c.Request.Context(), ownerID(c), offset, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, children, "child profiles", gin.H{"offset": offset, "limit": limit, "count": len(children)})
}

// Get GET /api/v1/children/:id
func (h *ChildHandler) Get(c *gin.Context) {
	child, err := h.Svc.Get(c.Request.Context(), c.Param("id"), ownerID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, child, "child profile", nil)
}

// Update PUT /api/v1/children/:id
func (h *ChildHandler) Update(c *gin.Context) {
	var req updateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	child, err := h.Svc.Update(c.Request.Context(), c.Param("id"), ownerID(c), repository.ChildUpdate{
		Name:          req.Name,
		Grade:         req.Grade,
		Subjects:      req.Subjects,
		LearningStyle: req.LearningStyle,
		Preferences:   req.Preferences,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, child, "child profile updated", nil)
}

// Delete DELETE /api/v1/children/:id
func (h *ChildHandler) Delete(c *gin.Context) {
	child, err := h.Svc.Delete(c.Request.Context(), c.Param("id"), ownerID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	if h.Logger != nil {
		h.Logger.WithFields(logrus.Fields{"child_id": child.ID}).Info("child profile deleted")
	}
	response.Success(c, http.StatusOK, child, "child profile deleted", nil)
}
