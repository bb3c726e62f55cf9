package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consultantnexus/marketplace-system/internal/api/metrics"
	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
)

// ApplicationHandler handles both sides of the application/invitation flow.
// Business endpoints operate on consultant-initiated rows and own invitations;
// consultant endpoints operate on their own rows and incoming invitations.
type ApplicationHandler struct {
	applications ports.ApplicationService
}

func NewApplicationHandler(applications ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// --- Business side ---

// ListForProject handles GET /v1/business/projects/:id/applications.
//
// @Summary      List applications on an owned project
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {array}   applicationDetailResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/business/projects/{id}/applications [get]
func (h *ApplicationHandler) ListForProject(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	details, err := h.applications.ListForProject(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	out := make([]applicationDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, applicationDetailResponse{Application: d.Application, ConsultantName: d.ConsultantName})
	}
	return c.JSON(http.StatusOK, out)
}

// Invite handles POST /v1/business/invitations.
//
// @Summary      Invite a consultant to a recruiting project
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      inviteRequest  true  "Project and consultant"
// @Success      201   {object}  domain.Application
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/business/invitations [post]
func (h *ApplicationHandler) Invite(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req inviteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.applications.Invite(c.Request().Context(), req.ProjectID, req.ConsultantID, userID)
	if err != nil {
		return err
	}

	metrics.ApplicationsCreatedTotal.WithLabelValues(string(domain.TypeInvitation)).Inc()
	return c.JSON(http.StatusCreated, app)
}

// CancelInvitation handles POST /v1/business/invitations/:id/cancel.
//
// @Summary      Withdraw a pending invitation
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Invitation id"
// @Success      200  {object}  domain.Application
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/business/invitations/{id}/cancel [post]
func (h *ApplicationHandler) CancelInvitation(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	app, err := h.applications.Cancel(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	metrics.ApplicationResponsesTotal.WithLabelValues(string(domain.ApplicationCancelled)).Inc()
	return c.JSON(http.StatusOK, app)
}

// RespondAsBusiness handles POST /v1/business/applications/:id/respond.
//
// @Summary      Accept or reject a consultant application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Application id"
// @Param        body  body      respondRequest  true  "Decision"
// @Success      200   {object}  domain.Application
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/business/applications/{id}/respond [post]
func (h *ApplicationHandler) RespondAsBusiness(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req respondRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.applications.RespondAsBusiness(c.Request().Context(), c.Param("id"), userID, *req.Accept)
	if err != nil {
		return err
	}

	metrics.ApplicationResponsesTotal.WithLabelValues(string(app.Status)).Inc()
	return c.JSON(http.StatusOK, app)
}

// --- Consultant side ---

// Apply handles POST /v1/consultant/applications.
//
// @Summary      Apply to a recruiting project
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyRequest  true  "Target project"
// @Success      201   {object}  domain.Application
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/consultant/applications [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.applications.Apply(c.Request().Context(), req.ProjectID, userID)
	if err != nil {
		return err
	}

	metrics.ApplicationsCreatedTotal.WithLabelValues(string(domain.TypeApplication)).Inc()
	return c.JSON(http.StatusCreated, app)
}

// CancelApplication handles POST /v1/consultant/applications/:id/cancel.
//
// @Summary      Withdraw a pending application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  domain.Application
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/consultant/applications/{id}/cancel [post]
func (h *ApplicationHandler) CancelApplication(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	app, err := h.applications.Cancel(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	metrics.ApplicationResponsesTotal.WithLabelValues(string(domain.ApplicationCancelled)).Inc()
	return c.JSON(http.StatusOK, app)
}

// ListInvitations handles GET /v1/consultant/invitations.
//
// @Summary      List pending invitations for the consultant
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  invitationDetailResponse
// @Router       /v1/consultant/invitations [get]
func (h *ApplicationHandler) ListInvitations(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	details, err := h.applications.ListInvitations(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]invitationDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, invitationDetailResponse{Application: d.Application, ProjectTitle: d.ProjectTitle, BusinessName: d.BusinessName})
	}
	return c.JSON(http.StatusOK, out)
}

// RespondToInvitation handles POST /v1/consultant/invitations/:id/respond.
//
// @Summary      Accept or decline an invitation
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Invitation id"
// @Param        body  body      respondRequest  true  "Decision"
// @Success      200   {object}  domain.Application
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/consultant/invitations/{id}/respond [post]
func (h *ApplicationHandler) RespondToInvitation(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req respondRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.applications.RespondAsConsultant(c.Request().Context(), c.Param("id"), userID, *req.Accept)
	if err != nil {
		return err
	}

	metrics.ApplicationResponsesTotal.WithLabelValues(string(app.Status)).Inc()
	return c.JSON(http.StatusOK, app)
}

// Opportunities handles GET /v1/consultant/opportunities.
//
// @Summary      List recruiting projects with the consultant's standing
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  opportunityResponse
// @Router       /v1/consultant/opportunities [get]
func (h *ApplicationHandler) Opportunities(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	opportunities, err := h.applications.Opportunities(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]opportunityResponse, 0, len(opportunities))
	for _, op := range opportunities {
		out = append(out, opportunityResponse{
			Project:          op.Project,
			ApplicationState: string(op.State),
			ApplicationID:    op.ApplicationID,
		})
	}
	return c.JSON(http.StatusOK, out)
}
