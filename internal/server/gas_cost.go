package server

import (
	"net/http"

	gascostdomain "github.com/gasplexhq/gasplex/internal/gascost/domain"
	"github.com/gasplexhq/gasplex/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListGasCosts(c *gin.Context) {
	var query pagination.Pagination
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.gasCostSvc.List(c.Request.Context(), gascostdomain.ListRequest{
		Filters:  collectFilters(c),
		Page:     query,
		BasePath: c.Request.URL.Path,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"data":       resp.Items,
		"pagination": resp.Page,
	})
}

func (s *Server) GetGasCost(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.gasCostSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": resp})
}

func (s *Server) CreateGasCost(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.gasCostSvc.Create(c.Request.Context(), gascostdomain.CreateRequest{Data: body})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": resp})
}

func (s *Server) UpdateGasCost(c *gin.Context) {
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

	resp, err := s.gasCostSvc.Update(c.Request.Context(), gascostdomain.UpdateRequest{
		ID:   id,
		Data: body,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": resp})
}

func (s *Server) DeleteGasCost(c *gin.Context) {
	c.Set(fallbackBadRequestKey, true)

	id, err := parseID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.gasCostSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
