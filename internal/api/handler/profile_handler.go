package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
)

// ProfileHandler handles consultant self-service profile endpoints.
type ProfileHandler struct {
	profiles ports.ProfileService
	reviews  ports.ReviewService
}

func NewProfileHandler(profiles ports.ProfileService, reviews ports.ReviewService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, reviews: reviews}
}

// Get handles GET /v1/consultant/profile. A consultant who has never saved a
// profile receives the default-constructed one.
//
// @Summary      Get the consultant's own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ConsultantProfile
// @Router       /v1/consultant/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.profiles.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Save handles PUT /v1/consultant/profile as a full replace.
//
// @Summary      Save the consultant's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveProfileRequest  true  "Full profile"
// @Success      200   {object}  domain.ConsultantProfile
// @Failure      400   {object}  errorResponse
// @Router       /v1/consultant/profile [put]
func (h *ProfileHandler) Save(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req saveProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profiles.Save(c.Request().Context(), ports.SaveProfileInput{
		UserID:         userID,
		Title:          req.Title,
		Phone:          req.Phone,
		Skills:         req.Skills,
		PreferredRoles: req.PreferredRoles,
		PreferredTasks: req.PreferredTasks,
		Location:       req.Location,
		Status:         domain.ConsultantStatus(req.Status),
		HourlyRate:     req.HourlyRate,
		Bio:            req.Bio,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// SetStatus handles PUT /v1/consultant/status. Only the availability flag
// changes; the rest of the profile is untouched.
//
// @Summary      Change the consultant's availability
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setStatusRequest  true  "New availability"
// @Success      200   {object}  domain.ConsultantProfile
// @Failure      400   {object}  errorResponse
// @Router       /v1/consultant/status [put]
func (h *ProfileHandler) SetStatus(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profiles.SetStatus(c.Request().Context(), userID, domain.ConsultantStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// MyReviews handles GET /v1/consultant/reviews.
//
// @Summary      List the consultant's own reviews
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  consultantReviewsResponse
// @Router       /v1/consultant/reviews [get]
func (h *ProfileHandler) MyReviews(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	history, err := h.reviews.ListForConsultant(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, consultantReviewsResponse{
		Reviews:       history.Reviews,
		AverageRating: history.AverageRating,
		ReviewCount:   history.ReviewCount,
	})
}
