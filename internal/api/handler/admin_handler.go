package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
)

// AdminHandler handles the admin console listings. Admin is read-only.
type AdminHandler struct {
	directory ports.DirectoryService
}

func NewAdminHandler(directory ports.DirectoryService) *AdminHandler {
	return &AdminHandler{directory: directory}
}

// Stats handles GET /v1/admin/stats.
//
// @Summary      Platform headline counts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adminStatsResponse
// @Router       /v1/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.directory.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminStatsResponse{
		UserCount:        stats.UserCount,
		ProjectCount:     stats.ProjectCount,
		ApplicationCount: stats.ApplicationCount,
		RecentUsers:      stats.RecentUsers,
	})
}

// ListUsers handles GET /v1/admin/users?search=&role=.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        search  query    string  false  "Matches name or email, case-insensitive"
// @Param        role    query    string  false  "Filter by role"
// @Success      200     {array}  domain.User
// @Router       /v1/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	role := domain.Role(c.QueryParam("role"))
	if role != "" && !domain.ValidRole(role) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown role")
	}

	users, err := h.directory.ListUsers(c.Request().Context(), c.QueryParam("search"), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ListProjects handles GET /v1/admin/projects?search=&status=.
//
// @Summary      List all projects across owners
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        search  query    string  false  "Matches title, case-insensitive"
// @Param        status  query    string  false  "Filter by project status"
// @Success      200     {array}  domain.Project
// @Router       /v1/admin/projects [get]
func (h *AdminHandler) ListProjects(c echo.Context) error {
	status := domain.ProjectStatus(c.QueryParam("status"))
	if status != "" && !domain.ValidProjectStatus(status) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown project status")
	}

	projects, err := h.directory.ListProjects(c.Request().Context(), c.QueryParam("search"), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// ListApplications handles GET /v1/admin/applications?status=.
//
// @Summary      List all applications and invitations
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query    string  false  "Filter by application status"
// @Success      200     {array}  domain.Application
// @Router       /v1/admin/applications [get]
func (h *AdminHandler) ListApplications(c echo.Context) error {
	applications, err := h.directory.ListApplications(c.Request().Context(), domain.ApplicationStatus(c.QueryParam("status")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applications)
}
