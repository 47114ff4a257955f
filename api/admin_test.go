package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	apimocks "github.com/bitmark-inc/foodprice-api/api/mocks"
	"github.com/bitmark-inc/foodprice-api/mocks"
)

func TestAdminIngestDataset(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := apimocks.NewMockEnqueuer(ctl)
	s := Server{
		countries: testCountryList(t),
		enqueuer:  e,
	}

	e.EXPECT().EnqueueIngest("wfp-food-prices-for-afghanistan").Return("task-1", nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/datasets/:name", s.adminIngestDataset)

	req := httptest.NewRequest("POST", "/datasets/wfp-food-prices-for-afghanistan", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code, "wrong status code")

	var jResp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "task-1", jResp["task_id"])
}

func TestAdminIngestDatasetNotListed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{
		countries: testCountryList(t),
		enqueuer:  apimocks.NewMockEnqueuer(ctl),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/datasets/:name", s.adminIngestDataset)

	req := httptest.NewRequest("POST", "/datasets/wfp-food-prices-for-atlantis", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorDatasetNotListed, jResp)
}

func TestAdminIngestDatasetEnqueueError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := apimocks.NewMockEnqueuer(ctl)
	s := Server{
		countries: testCountryList(t),
		enqueuer:  e,
	}

	e.EXPECT().EnqueueIngest(gomock.Any()).Return("", errors.New("broker down")).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/datasets/:name", s.adminIngestDataset)

	req := httptest.NewRequest("POST", "/datasets/wfp-food-prices-for-afghanistan", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")
}

func TestSecretRouteRequiresToken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	viper.Set("server.apikey.admin", "secret-token")
	defer viper.Set("server.apikey.admin", "")

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		countries:  testCountryList(t),
		renderer:   testRenderer(),
	}
	gin.SetMode(gin.TestMode)
	router := s.setupRouter()

	req := httptest.NewRequest("GET", "/secret/keys", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	m.EXPECT().ListCountryKeys().Return([]string{"key-afg", "key-syr"}, nil).Times(1)

	req = httptest.NewRequest("GET", "/secret/keys", nil)
	req.Header.Set("Api-Token", "secret-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Keys []string `json:"keys"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, []string{"key-afg", "key-syr"}, jResp.Keys)
}

func TestHealthz(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/healthz", s.healthz)

	m.EXPECT().Ping().Return(nil).Times(1)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	m.EXPECT().Ping().Return(errors.New("no reachable servers")).Times(1)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
