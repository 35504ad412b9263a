package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// badRequestOnPanic is the catch-all every CRUD action defers: an
// uncaught failure inside a processor is reported to the caller as a
// 400 carrying the failure text. That folds some true server errors
// into client errors; the dashboard relies on this mapping.
func badRequestOnPanic(c *gin.Context) {
	if r := recover(); r != nil {
		c.JSON(http.StatusBadRequest, fmt.Sprint(r))
	}
}
