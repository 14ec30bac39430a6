package server

import (
	"net/http"

	gasreportdomain "github.com/gasplexhq/gasplex/internal/gasreport/domain"
	"github.com/gasplexhq/gasplex/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListGasSituationReports(c *gin.Context) {
	var query pagination.Pagination
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.gasReportSvc.List(c.Request.Context(), gasreportdomain.ListRequest{
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

func (s *Server) GetGasSituationReport(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.gasReportSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": resp})
}

func (s *Server) CreateGasSituationReport(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.gasReportSvc.Create(c.Request.Context(), gasreportdomain.CreateRequest{Data: body})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": resp})
}

func (s *Server) UpdateGasSituationReport(c *gin.Context) {
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

	resp, err := s.gasReportSvc.Update(c.Request.Context(), gasreportdomain.UpdateRequest{
		ID:   id,
		Data: body,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": resp})
}

func (s *Server) DeleteGasSituationReport(c *gin.Context) {
	c.Set(fallbackBadRequestKey, true)

	id, err := parseID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.gasReportSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
