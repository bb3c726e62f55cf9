package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consultantnexus/marketplace-system/internal/api/metrics"
	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
)

// ProjectHandler handles the business-side project lifecycle.
type ProjectHandler struct {
	projects ports.ProjectService
	reviews  ports.ReviewService
}

func NewProjectHandler(projects ports.ProjectService, reviews ports.ReviewService) *ProjectHandler {
	return &ProjectHandler{projects: projects, reviews: reviews}
}

// Create handles POST /v1/business/projects.
//
// @Summary      Create a project posting
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      projectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/business/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projects.Create(c.Request().Context(), ports.CreateProjectInput{
		Title:          req.Title,
		Description:    req.Description,
		Budget:         req.Budget,
		Points:         req.Points,
		RequiredSkills: req.RequiredSkills,
		OwnerID:        userID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	})
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, project)
}

// List handles GET /v1/business/projects?status=.
//
// @Summary      List owned projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by project status"
// @Success      200     {array}   projectSummaryResponse
// @Router       /v1/business/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	status := domain.ProjectStatus(c.QueryParam("status"))
	if status != "" && !domain.ValidProjectStatus(status) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown project status")
	}

	summaries, err := h.projects.ListOwned(c.Request().Context(), userID, status)
	if err != nil {
		return err
	}

	out := make([]projectSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, projectSummaryResponse{Project: s.Project, PendingApplications: s.PendingApplications})
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /v1/business/projects/:id.
//
// @Summary      Get an owned project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/business/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	project, err := h.projects.GetOwned(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Update handles PUT /v1/business/projects/:id. Status never changes through
// this endpoint.
//
// @Summary      Edit an owned project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Project id"
// @Param        body  body      projectRequest  true  "Updated details"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/business/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projects.Update(c.Request().Context(), ports.UpdateProjectInput{
		ProjectID:      c.Param("id"),
		OwnerID:        userID,
		Title:          req.Title,
		Description:    req.Description,
		Budget:         req.Budget,
		Points:         req.Points,
		RequiredSkills: req.RequiredSkills,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Terminate handles POST /v1/business/projects/:id/terminate. The explicit
// confirm flag guards against accidental termination.
//
// @Summary      Terminate an owned project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Project id"
// @Param        body  body      terminateProjectRequest  true  "Confirmation"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/business/projects/{id}/terminate [post]
func (h *ProjectHandler) Terminate(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req terminateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projects.Terminate(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// SubmitReview handles POST /v1/business/projects/:id/review. The review and
// the project's move to COMPLETED commit together.
//
// @Summary      Review the accepted consultant and complete the project
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Project id"
// @Param        body  body      submitReviewRequest  true  "Rating and comment"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/business/projects/{id}/review [post]
func (h *ProjectHandler) SubmitReview(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviews.Submit(c.Request().Context(), ports.SubmitReviewInput{
		ProjectID:  c.Param("id"),
		BusinessID: userID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return err
	}

	metrics.ReviewsSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, review)
}
