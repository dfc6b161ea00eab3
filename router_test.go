package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dattgoswami/spreadsheet-backend-library/mocks"
)

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	routes := []struct {
		method string
		path   string
		action string
	}{
		{http.MethodPost, "/api/" + ApiVersion + "/sheet1/undo", "UndoAction"},
		{http.MethodPost, "/api/" + ApiVersion + "/sheet1/redo", "RedoAction"},
		{http.MethodPost, "/api/" + ApiVersion + "/sheet1/A1/subscribe", "SubscribeAction"},
		{http.MethodPost, "/api/" + ApiVersion + "/sheet1/A1", "SetCellAction"},
		{http.MethodGet, "/api/" + ApiVersion + "/sheet1/A1", "GetCellAction"},
		{http.MethodGet, "/api/" + ApiVersion + "/sheet1", "GetSheetAction"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			controller := mocks.NewApiController(t)
			controller.On(route.action, mock.IsType(&gin.Context{})).Return().Once()

			router := SetupRouter(controller, nil)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(route.method, route.path, nil)
			router.ServeHTTP(w, req)
		})
	}

	t.Run("healthcheck", func(t *testing.T) {
		router := SetupRouter(mocks.NewApiController(t), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/healthcheck", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "health", w.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		router := SetupRouter(mocks.NewApiController(t), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "cellstore_cell_writes_total")
	})

	t.Run("unknown route", func(t *testing.T) {
		router := SetupRouter(mocks.NewApiController(t), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/api/"+ApiVersion+"/sheet1/A1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logger, output := newCapturedLogger()

	controller := mocks.NewApiController(t)
	controller.On("GetSheetAction", mock.IsType(&gin.Context{})).Return().Once()

	router := SetupRouter(controller, logger)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/"+ApiVersion+"/sheet1", nil)
	router.ServeHTTP(w, req)

	assert.Contains(t, output.String(), "request_id")
	assert.Contains(t, output.String(), "/api/"+ApiVersion+"/sheet1")
}
