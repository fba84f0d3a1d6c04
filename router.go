package main

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"scMicroservice/contracts"
)

const cellsPath = "/cells"

func SetupRouter(controller contracts.ApiController, metrics *Metrics) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(metrics), gin.Recovery())

	cellsRouterGroup := router.Group(cellsPath)
	cellsRouterGroup.GET("", controller.ListCellsAction)
	cellsRouterGroup.PUT("/:cell_id", controller.PutCellAction)
	cellsRouterGroup.GET("/:cell_id", controller.GetCellAction)
	cellsRouterGroup.DELETE("/:cell_id", controller.DeleteCellAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	return router
}
