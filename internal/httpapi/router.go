package httpapi

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every route onto a fresh gin engine
func NewRouter(h *Handler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.SetHTMLTemplate(template.Must(template.ParseFS(webFS, "web/index.html")))
	static, _ := fs.Sub(webFS, "web/static")
	r.StaticFS("/static", http.FS(static))

	r.GET("/health", h.GetHealth)
	r.GET("/", h.withSession, h.GetPage)

	api := r.Group("/api")
	api.POST("/refine", h.PostRefine)

	s := api.Group("/session", h.withSession)
	s.GET("", h.GetSession)
	s.PUT("/input", h.PutInput)
	s.POST("/options/:name/toggle", h.PostToggleOption)
	s.POST("/submit", h.PostSubmit)
	s.POST("/discard", h.PostDiscard)
	s.GET("/download", h.GetDownload)

	return r
}

// requestLogger logs one debug line per request through the service logger
func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		h.logger.Debug(c.Request.Context(), "%s %s -> %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}
