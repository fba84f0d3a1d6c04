package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	PutCellAction(c *gin.Context)
	GetCellAction(c *gin.Context)
	DeleteCellAction(c *gin.Context)
	ListCellsAction(c *gin.Context)
}
