package api

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxListLimit = 100

var errLimitOutOfRange = errors.New("limit must be between 1 and 100")

func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// parseLimitQuery reads the optional limit query parameter. Values outside
// 1..100 are rejected rather than clamped.
func parseLimitQuery(c *gin.Context) (*int32, error) {
	v := c.Query("limit")
	if v == "" {
		return nil, nil
	}
	iv, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return nil, err
	}
	if iv < 1 || iv > maxListLimit {
		return nil, errLimitOutOfRange
	}
	limit := int32(iv)
	return &limit, nil
}

func queryPtr(c *gin.Context, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}
