package restapi

import (
	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/dedupe"
	st "github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/settings"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	Router *gin.Engine
}

// response to hitting '/' on the server
func GetRoot(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/plain")
	_, err := c.Writer.Write([]byte("UniqueStream"))
	if err != nil {
		st.Logger.Err(err).Msg("get root")
	}
}

// Basic middleware to log errors.
func ErrorLoggerMiddleware(c *gin.Context) {
	if c == nil {
		st.Logger.Error().Msg("gin error, couldn't provide error info as context was nil.")
		return
	}
	c.Next()

	for _, err := range c.Errors {
		if c.Request == nil || c.Request.URL == nil {
			st.Logger.Error().Err(err).Msg("gin error, limited detail was Request or Request URL was nil.")
		} else {
			st.Logger.Error().Err(err).Msgf("gin error on route %s %s with query params %v", c.Request.Method, c.Request.URL, c.Request.URL.Query())
		}
	}
}

func NewServer(checker *dedupe.Checker, conf *st.USRestapi) *Server {
	items := NewItems(checker, conf)
	gin.SetMode(gin.ReleaseMode) // don't print route list on start

	st.Logger.Info().Msg("Start UniqueStream RestAPI")
	router := gin.New()
	router.Use(ErrorLoggerMiddleware)
	// filter dimensions and fill
	lpath := "/api/v1/filter"
	router.GET(lpath, MetricHandler(lpath, items.GetFilter))
	// record an item as seen
	lpath = "/api/v1/items/add"
	router.POST(lpath, MetricHandler(lpath, items.PostAdd))
	// verdict for an item without recording it
	lpath = "/api/v1/items/contains"
	router.POST(lpath, MetricHandler(lpath, items.PostContains))
	// verdict for an item, recording it as seen
	lpath = "/api/v1/items/check"
	router.POST(lpath, MetricHandler(lpath, items.PostCheck))

	// base response
	router.GET("/", GetRoot)

	// memory monitoring
	pprof.Register(router, "debug/pprof")

	// prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Server{Router: router}
}
