package handlers

import (
	"errors"
	response "madinah_tours/internal/adapter/http/dto/response"
	"madinah_tours/internal/usecase"
	"madinah_tours/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SiteHandler serves the read-only historical site catalog.

type SiteHandler struct {
	usecase usecase.ISiteUseCase
}

func NewSiteHandler(uc usecase.ISiteUseCase) *SiteHandler {
	return &SiteHandler{usecase: uc}
}

func (h *SiteHandler) ListSites(c *gin.Context) {
	sites, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSiteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSites(sites))
}

func (h *SiteHandler) GetSite(c *gin.Context) {
	id := c.Param("site_id")

	site, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapSiteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSite(site))
}

func mapSiteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSiteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSiteNotFound):
		return pkg.NewDomainErrorSimple("SITE_NOT_FOUND", "Historical site not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
