package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consultantnexus/marketplace-system/internal/api/metrics"
	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
)

// AssistHandler fronts the generative assistant endpoints. Every response is
// useful even when the assistant is disabled: callers get the neutral value,
// never an upstream failure.
type AssistHandler struct {
	assist ports.AssistService
}

func NewAssistHandler(assist ports.AssistService) *AssistHandler {
	return &AssistHandler{assist: assist}
}

// Recommendations handles POST /v1/business/projects/:id/recommendations.
//
// @Summary      Rank available consultants for an owned project
// @Tags         assist
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  recommendationsResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/business/projects/{id}/recommendations [post]
func (h *AssistHandler) Recommendations(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ids, err := h.assist.RankConsultants(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		metrics.AssistRequestsTotal.WithLabelValues("rank", outcomeLabel(err)).Inc()
		return err
	}

	metrics.AssistRequestsTotal.WithLabelValues("rank", "ok").Inc()
	return c.JSON(http.StatusOK, recommendationsResponse{ConsultantIDs: ids})
}

// RefineDescription handles POST /v1/business/assist/description.
//
// @Summary      Rewrite a project description and extract skills
// @Tags         assist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      refineDescriptionRequest  true  "Raw description"
// @Success      200   {object}  refineDescriptionResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/business/assist/description [post]
func (h *AssistHandler) RefineDescription(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req refineDescriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	refined, err := h.assist.RefineDescription(c.Request().Context(), userID, req.Description)
	if err != nil {
		metrics.AssistRequestsTotal.WithLabelValues("refine", outcomeLabel(err)).Inc()
		return err
	}

	metrics.AssistRequestsTotal.WithLabelValues("refine", "ok").Inc()
	return c.JSON(http.StatusOK, refineDescriptionResponse{Refined: refined.Refined, Skills: refined.Skills})
}

// SynthesizeAvatar handles POST /v1/assist/avatar. An empty avatar in the
// response means the assistant is disabled or failed; the caller keeps the
// current avatar.
//
// @Summary      Generate a profile avatar from a style prompt
// @Tags         assist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      synthesizeAvatarRequest  true  "Style prompt"
// @Success      200   {object}  synthesizeAvatarResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/assist/avatar [post]
func (h *AssistHandler) SynthesizeAvatar(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req synthesizeAvatarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	avatar, err := h.assist.SynthesizeAvatar(c.Request().Context(), userID, req.StylePrompt)
	if err != nil {
		metrics.AssistRequestsTotal.WithLabelValues("avatar", outcomeLabel(err)).Inc()
		return err
	}

	metrics.AssistRequestsTotal.WithLabelValues("avatar", "ok").Inc()
	return c.JSON(http.StatusOK, synthesizeAvatarResponse{Avatar: avatar})
}

func outcomeLabel(err error) string {
	if errors.Is(err, domain.ErrAssistInFlight) {
		return "conflict"
	}
	return "error"
}
