package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dattgoswami/spreadsheet-backend-library/contracts"
)

type ApiController struct {
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
}

type CellEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
	CellId  string `uri:"cell_id" binding:"required"`
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
}

type SetCellRequest struct {
	Value string `json:"value" binding:"required"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url" binding:"required,url"`
}

func NewApiController(sheetRepository contracts.SheetRepository, webhookDispatcher contracts.WebhookDispatcher) *ApiController {
	return &ApiController{
		SheetRepository:   sheetRepository,
		WebhookDispatcher: webhookDispatcher,
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err == nil {
		response, err = api.SheetRepository.SetCell(params.SheetId, params.CellId, request.Value)
	}

	if err != nil {
		if response == nil {
			response = &contracts.Cell{Id: params.CellId}
		}
		response.Value = request.Value
		response.Result = err.Error()
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	if api.WebhookDispatcher != nil {
		api.WebhookDispatcher.Notify(params.SheetId, []*contracts.Cell{response})
	}
	c.JSON(http.StatusCreated, response)
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetCell(params.SheetId, params.CellId)
	}

	switch {
	case errors.Is(err, contracts.CellNotFoundError) || errors.Is(err, contracts.SheetNotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, contracts.InvalidFormulaError) || errors.Is(err, contracts.CircularReferenceError):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var response contracts.CellList

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetCellList(params.SheetId)
	}

	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) UndoAction(c *gin.Context) {
	api.historyAction(c, api.SheetRepository.Undo)
}

func (api *ApiController) RedoAction(c *gin.Context) {
	api.historyAction(c, api.SheetRepository.Redo)
}

func (api *ApiController) historyAction(c *gin.Context, move func(sheetId string) error) {
	params := SheetEndpointParams{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = move(params.SheetId)
	}

	switch {
	case errors.Is(err, contracts.SheetNotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, contracts.CircularReferenceError):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusNoContent)
	}
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	api.WebhookDispatcher.SetWebhookUrl(params.SheetId, params.CellId, request.WebhookUrl)
	c.JSON(http.StatusCreated, gin.H{"webhook_url": request.WebhookUrl})
}
