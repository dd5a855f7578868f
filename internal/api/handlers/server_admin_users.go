package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "modgoviya.io/modgoviya/internal/pkg/errors"
	"modgoviya.io/modgoviya/internal/service"
)

type adminUserPatch struct {
	IsActive *bool   `json:"isActive"`
	Role     *string `json:"role"`
}

// AdminListUsers handles GET /admin/users.
func (s *Server) AdminListUsers(c *gin.Context) {
	filter := service.ListUsersFilter{
		Role: c.Query("role"),
	}
	if v := c.Query("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "active must be true or false"))
			return
		}
		filter.IsActive = &active
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, total, err := s.auth.ListUsers(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]service.UserSummary, len(users))
	for i, u := range users {
		items[i] = service.Summarize(u)
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
	})
}

// AdminUpdateUser handles PATCH /admin/users/:id.
func (s *Server) AdminUpdateUser(c *gin.Context) {
	var req adminUserPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid request body"))
		return
	}
	if req.IsActive == nil && req.Role == nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "nothing to update"))
		return
	}

	u, err := s.auth.AdminUpdateUser(c.Request.Context(), c.Param("id"), service.AdminUserPatch{
		IsActive: req.IsActive,
		Role:     req.Role,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, service.Summarize(u))
}
