package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/gemveer/inventory/internal/api/shared/constants"
)

// PageQueryParams holds the shared pagination query parameters
type PageQueryParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListPacketsQueryParams holds query parameters for GET /packet
type ListPacketsQueryParams struct {
	Status string `form:"status"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// ParsePageQuery parses and caps the shared pagination parameters
func ParsePageQuery(c *gin.Context) (*PageQueryParams, error) {
	var params PageQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	capPage(&params.Limit, &params.Offset)
	return &params, nil
}

// ParseListPacketsQuery parses query parameters for GET /packet
func ParseListPacketsQuery(c *gin.Context) (*ListPacketsQueryParams, error) {
	var params ListPacketsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	capPage(&params.Limit, &params.Offset)
	return &params, nil
}

func capPage(limit, offset *int) {
	if *limit <= 0 {
		*limit = constants.DEFAULT_PACKETS_LIMIT
	}
	if *limit > constants.MAX_PAGE_SIZE {
		*limit = constants.MAX_PAGE_SIZE
	}
	if *offset < 0 {
		*offset = 0
	}
}
