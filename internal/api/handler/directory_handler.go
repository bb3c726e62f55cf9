package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/consultantnexus/marketplace-system/internal/core/ports"
)

// DirectoryHandler handles the business-side talent pool views.
type DirectoryHandler struct {
	directory ports.DirectoryService
}

func NewDirectoryHandler(directory ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// SearchConsultants handles GET /v1/business/consultants?search=&status=.
//
// @Summary      Search the consultant talent pool
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Matches name or any skill, case-insensitive"
// @Param        status  query     string  false  "Availability filter; ALL or empty matches everyone"
// @Success      200     {array}   consultantSummaryResponse
// @Router       /v1/business/consultants [get]
func (h *DirectoryHandler) SearchConsultants(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	summaries, err := h.directory.SearchConsultants(c.Request().Context(), ports.ConsultantSearchInput{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}

	out := make([]consultantSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, consultantSummaryResponse{
			User:          s.User,
			Profile:       s.Profile,
			AverageRating: s.AverageRating,
			ReviewCount:   s.ReviewCount,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// GetConsultant handles GET /v1/business/consultants/:id with the full
// review history attached.
//
// @Summary      Get one consultant with reviews
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Consultant user id"
// @Success      200  {object}  consultantDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/business/consultants/{id} [get]
func (h *DirectoryHandler) GetConsultant(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	detail, err := h.directory.GetConsultant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, consultantDetailResponse{
		consultantSummaryResponse: consultantSummaryResponse{
			User:          detail.User,
			Profile:       detail.Profile,
			AverageRating: detail.AverageRating,
			ReviewCount:   detail.ReviewCount,
		},
		Reviews: detail.Reviews,
	})
}
