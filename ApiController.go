package main

import (
	"errors"
	"github.com/gin-gonic/gin"
	"go.alis.build/alog"
	"net/http"
	"scMicroservice/contracts"
)

type ApiController struct {
	Store            contracts.CellStore
	FormulaEvaluator contracts.FormulaEvaluator
}

type CellEndpointParams struct {
	CellId string `uri:"cell_id" binding:"required"`
}

type PutCellRequest struct {
	Id      string `json:"id" binding:"required"`
	Formula string `json:"formula" binding:"required"`
}

var CellIdMismatchError = errors.New("cell id in path does not match cell id in body")

func NewApiController(store contracts.CellStore, formulaEvaluator contracts.FormulaEvaluator) *ApiController {
	return &ApiController{
		Store:            store,
		FormulaEvaluator: formulaEvaluator,
	}
}

func (api *ApiController) PutCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := PutCellRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}
	if err == nil && request.Id != params.CellId {
		err = CellIdMismatchError
	}

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := api.Store.Put(c.Request.Context(), params.CellId, request.Formula)
	if err != nil {
		api.respondError(c, err)
	} else if created {
		c.JSON(http.StatusCreated, contracts.Cell{Id: params.CellId, Formula: request.Formula})
	} else {
		c.Status(http.StatusNoContent)
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	formula, found, err := api.Store.Lookup(ctx, params.CellId)
	if err != nil {
		api.respondError(c, err)
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, contracts.Cell{Id: params.CellId, Formula: FormatNumber(MissingReferenceValue)})
		return
	}

	value, err := api.FormulaEvaluator.Evaluate(ctx, params.CellId, formula)
	if err != nil {
		alog.Warnf(ctx, "cell %s formula `%s`: %s", params.CellId, formula, err)
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.Cell{Id: params.CellId, Formula: value})
}

func (api *ApiController) DeleteCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := api.Store.Delete(c.Request.Context(), params.CellId); err != nil {
		api.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (api *ApiController) ListCellsAction(c *gin.Context) {
	cellIds, err := api.Store.List(c.Request.Context())
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cellIds)
}

func (api *ApiController) respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	if errors.Is(err, contracts.CellNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, contracts.StorageUnavailableError) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
