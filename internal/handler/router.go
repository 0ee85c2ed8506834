package handler

import (
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Ingest   *IngestHandler
	Index    *IndexHandler
	Generate *GenerateHandler
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.POST("/ingest", deps.Ingest.Ingest)
	api.POST("/reindex", deps.Ingest.Reindex)

	api.GET("/search", deps.Index.Search)
	api.GET("/index/status", deps.Index.Status)
	api.POST("/index/reset", deps.Index.Reset)

	api.POST("/generate", deps.Generate.All)
	api.POST("/generate/:artifact", deps.Generate.One)
}
