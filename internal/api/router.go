package api

import (
	_ "spacex-dashboard/docs"
	"spacex-dashboard/internal/api/handler"
	"spacex-dashboard/internal/render"
	"spacex-dashboard/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"
)

func RegisterRoutes(r *router.Router, h *handler.Handler) {
	r.GET("/", h.Page)
	r.GET("/api/v1/layout", h.GetLayout)
	r.GET("/api/v1/dataset", h.GetDataset)

	r.GET("/api/v1/charts/success-pie", h.GetSuccessPie)
	r.GET("/api/v1/charts/success-pie.svg", h.SuccessPieImage(render.FormatSVG))
	r.GET("/api/v1/charts/success-pie.png", h.SuccessPieImage(render.FormatPNG))
	r.GET("/api/v1/charts/payload-scatter", h.GetPayloadScatter)
	r.GET("/api/v1/charts/payload-scatter.svg", h.PayloadScatterImage(render.FormatSVG))
	r.GET("/api/v1/charts/payload-scatter.png", h.PayloadScatterImage(render.FormatPNG))
	r.GET(render.LivePath, h.Live)

	r.POST("/api/v1/exports", h.CreateExport)
	r.GET("/api/v1/exports", h.ListExports)
	r.GET(handler.DownloadPattern, h.Download)
	r.GET("/api/v1/queries", h.ListQueries)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
