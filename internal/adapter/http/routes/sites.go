package routes

import (
	"madinah_tours/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSites = "/sites"
)

func addSiteRoutes(rg *gin.RouterGroup, siteHandler *handlers.SiteHandler) {
	sites := rg.Group(PathSites)
	{
		sites.GET("", siteHandler.ListSites)
		sites.GET("/:site_id", siteHandler.GetSite)
	}
}
