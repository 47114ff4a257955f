package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/foodprice-api/store"
)

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			abortWithEncoding(c, http.StatusForbidden, errorInvalidToken)
			return
		}
		c.Next()
	}
}

// recognizeCountryMiddleware is a middleware to make sure the requested
// record exists. It attaches a "country" key in gin's context.
func (s *Server) recognizeCountryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		if key == "" {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}

		country, err := s.mongoStore.GetCountry(key)
		if err == store.ErrCountryNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorCountryNotFound)
			return
		} else if shouldInterupt(err, c) {
			return
		}

		c.Set("country", country)
		c.Next()
	}
}
