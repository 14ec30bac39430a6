package server

import (
	"net/http"
	"strconv"
	"strings"

	dailyvolumedomain "github.com/gasplexhq/gasplex/internal/dailyvolume/domain"
	"github.com/gasplexhq/gasplex/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListDailyVolumes(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Paginate string `form:"paginate"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	paginate := true
	if raw := strings.TrimSpace(query.Paginate); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}
		paginate = parsed
	}

	resp, err := s.dailyVolumeSvc.List(c.Request.Context(), dailyvolumedomain.ListRequest{
		Filters:  collectFilters(c),
		Page:     query.Pagination,
		Paginate: paginate,
		BasePath: c.Request.URL.Path,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	payload := gin.H{"status": "success", "data": resp.Items}
	if resp.Page != nil {
		payload["pagination"] = resp.Page
	}
	c.JSON(http.StatusOK, payload)
}

func (s *Server) GetDailyVolume(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.dailyVolumeSvc.Get(c.Request.Context(), dailyvolumedomain.GetRequest{
		ID:       id,
		Includes: parseIncludes(c),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": resp})
}

func (s *Server) CreateDailyVolume(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.dailyVolumeSvc.Create(c.Request.Context(), dailyvolumedomain.CreateRequest{Data: body})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": resp})
}

func (s *Server) UpdateDailyVolume(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	delete(body, "id")

	resp, err := s.dailyVolumeSvc.Update(c.Request.Context(), dailyvolumedomain.UpdateRequest{
		ID:   id,
		Data: body,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": resp})
}

func (s *Server) DeleteDailyVolume(c *gin.Context) {
	c.Set(fallbackBadRequestKey, true)

	id, err := parseID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.dailyVolumeSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
