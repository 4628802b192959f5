// internal/interfaces/http/handlers/response.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/errs"
)

// Response is the envelope every endpoint returns
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func respondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Message: message})
}

// respondError maps domain errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch errs.KindOf(err) {
	case errs.KindValidation, errs.KindInsufficientStock, errs.KindSizeNotFound, errs.KindEmptyCart:
		status = http.StatusBadRequest
		message = err.Error()
	case errs.KindNotFound:
		status = http.StatusNotFound
		message = err.Error()
	case errs.KindOrderCreationFailed:
		status = http.StatusInternalServerError
		message = err.Error()
	}

	c.JSON(status, Response{Success: false, Message: message})
}
