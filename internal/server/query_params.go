package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// reservedParams are query keys consumed by the handlers themselves and
// never forwarded to the filter layer.
var reservedParams = map[string]struct{}{
	"page":     {},
	"per_page": {},
	"paginate": {},
	"include":  {},
}

func collectFilters(c *gin.Context) map[string]string {
	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if _, reserved := reservedParams[key]; reserved {
			continue
		}
		if len(values) == 0 {
			continue
		}
		value := strings.TrimSpace(values[0])
		if value == "" {
			continue
		}
		filters[key] = value
	}
	return filters
}

func parseID(c *gin.Context) (int64, error) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidRequest
	}
	return id, nil
}

func parseIncludes(c *gin.Context) []string {
	raw := strings.TrimSpace(c.Query("include"))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	includes := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		includes = append(includes, part)
	}
	return includes
}
