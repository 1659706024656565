package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the create post request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds the list posts query parameters. Binding never
// fails here: malformed pagination/sort input is normalized to defaults
// downstream instead of being rejected.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
