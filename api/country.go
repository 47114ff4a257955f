package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/foodprice-api/external/hdx"
	"github.com/bitmark-inc/foodprice-api/schema"
	"github.com/bitmark-inc/foodprice-api/store"
)

// getCountries returns the records of the requested ISO codes keyed by ISO
// code. Without the `iso` query it returns every listed country.
func (s *Server) getCountries(c *gin.Context) {
	var codes []string
	if iso := c.Query("iso"); iso != "" {
		codes = strings.Split(iso, ",")
	} else {
		codes = s.countries.ISOCodes()
	}

	countries, err := s.mongoStore.GetCountries(codes)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, countries)
}

func (s *Server) getCountry(c *gin.Context) {
	country, ok := c.MustGet("country").(*schema.Country)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, country)
}

// getCountryPrices returns the price table behind the download url of a
// record
func (s *Server) getCountryPrices(c *gin.Context) {
	country, ok := c.MustGet("country").(*schema.Country)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	if country.DownloadURL == "" {
		abortWithEncoding(c, http.StatusNotFound, errorDatasetNotFound)
		return
	}

	table, err := s.catalog.Prices(country.DownloadURL)
	if err != nil {
		abortWithCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, table)
}

func (s *Server) getReferencePeriod(c *gin.Context) {
	country, ok := c.MustGet("country").(*schema.Country)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	period, err := s.catalog.ReferencePeriod(country.Name)
	if err != nil {
		abortWithCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, period)
}

// getCountryMap returns the map file of a record's country from the drive
func (s *Server) getCountryMap(c *gin.Context) {
	country, ok := c.MustGet("country").(*schema.Country)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	content, err := s.mongoStore.CountryMap(country.CountryID)
	if err != nil {
		switch err {
		case store.ErrMapNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorMapNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.Data(http.StatusOK, "application/geo+json", content)
}

func abortWithCatalogError(c *gin.Context, err error) {
	switch err {
	case hdx.ErrDatasetNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorDatasetNotFound, err)
	case hdx.ErrInvalidReferencePeriod:
		abortWithEncoding(c, http.StatusBadGateway, errorInvalidReferencePeriod, err)
	default:
		abortWithEncoding(c, http.StatusBadGateway, errorCatalogUnavailable, err)
	}
}
