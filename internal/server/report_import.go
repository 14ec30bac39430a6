package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const maxReportSize = 2 << 20

func (s *Server) PreviewDailyGasReport(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	if fileHeader.Size > maxReportSize {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		AbortWithError(c, err)
		return
	}
	defer file.Close()

	rows, err := s.reportParser.Parse(file)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": rows})
}
