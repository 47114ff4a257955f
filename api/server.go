package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/foodprice-api/background"
	"github.com/bitmark-inc/foodprice-api/catalog"
	"github.com/bitmark-inc/foodprice-api/external/hdx"
	"github.com/bitmark-inc/foodprice-api/figure"
	"github.com/bitmark-inc/foodprice-api/logmodule"
	"github.com/bitmark-inc/foodprice-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	mongoStore store.MongoStore

	// External services
	catalog hdx.Catalog

	// countries which have a food price dataset
	countries *catalog.CountryList

	// world map figure
	renderer *figure.Renderer

	// job pool enqueuer
	enqueuer background.Enqueuer
}

// NewServer new instance of server
func NewServer(
	mongoStore store.MongoStore,
	hdxClient hdx.Catalog,
	countries *catalog.CountryList,
	renderer *figure.Renderer,
	enqueuer background.Enqueuer) *Server {
	return &Server{
		mongoStore: mongoStore,
		catalog:    hdxClient,
		countries:  countries,
		renderer:   renderer,
		enqueuer:   enqueuer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	r.SetHTMLTemplate(pageTemplate)
	r.GET("/", logmodule.Ginrus("Page"), s.index)

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	apiRoute.GET("/information", s.information)
	apiRoute.GET("/map", s.worldMap)

	countryRoute := apiRoute.Group("/countries")
	{
		countryRoute.GET("", s.getCountries)
	}

	countryRoute.Use(s.recognizeCountryMiddleware())
	{
		countryRoute.GET("/:key", s.getCountry)
		countryRoute.GET("/:key/prices", s.getCountryPrices)
		countryRoute.GET("/:key/reference-period", s.getReferencePeriod)
		countryRoute.GET("/:key/map", s.getCountryMap)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.GET("/keys", s.adminListKeys)
		secretRoute.POST("/datasets/:name", s.adminIngestDataset)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"title":     viper.GetString("server.title"),
			"countries": len(s.countries.ISOCodes()),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
