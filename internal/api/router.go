package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadBytes bounds multipart memory buffering for manuscript uploads.
const maxUploadBytes = 32 << 20

// NewRouter builds the gin engine with logging, panic recovery, and the
// pipeline routes.
func NewRouter(h *Handler, debug bool) *gin.Engine {
	if debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), requestID())
	router.MaxMultipartMemory = maxUploadBytes

	group := router.Group("/api")
	group.POST("/generate-preview", h.GeneratePreview)
	group.POST("/upload-with-template", h.UploadWithTemplate)

	router.GET("/healthz", h.Healthz)

	return router
}

// requestID tags every request for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
