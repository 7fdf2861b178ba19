// Package v1 implements the HTTP routes of the voice-cloning UI and API.
package v1

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voice_cloning/entity"
	"voice_cloning/pkg/logger"
)

const traceName = "HTTP-V1"

//go:embed index.html
var indexHTML string

// NewRouter -.
// Swagger spec:
// @title       Voice Cloning API
// @description Upload a voice sample, enter text, get cloned speech back.
// @version     1.0
// @BasePath    /v1
func NewRouter(handler *gin.Engine, l logger.Interface, uc entity.SynthesisUsecase, maxUploadBytes int64) {
	// Options
	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())

	handler.SetHTMLTemplate(template.Must(template.New("index").Parse(indexHTML)))

	// Swagger
	handler.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health probe, includes the engine
	handler.GET("/healthz", func(c *gin.Context) {
		if err := uc.Health(c.Request.Context()); err != nil {
			l.Error(err, "http - healthz")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})

			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus metrics
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// UI
	handler.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index", gin.H{"Languages": uc.Languages()})
	})

	// Routers
	h := handler.Group("/v1")
	{
		newSynthesisRoutes(h, uc, l, maxUploadBytes)
	}
}
