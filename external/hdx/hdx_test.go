package hdx_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/foodprice-api/external/hdx"
)

const packageShowResponse = `{
  "success": true,
  "result": {
    "id": "dataset-afg",
    "name": "wfp-food-prices-for-afghanistan",
    "archived": false,
    "due_date": "2023-11-22T08:49:54",
    "overdue_date": "2023-12-22T08:49:54",
    "dataset_date": "[2000-01-15T00:00:00 TO 2023-11-15T23:59:59]",
    "groups": [{"id": "afg", "display_name": "Afghanistan"}],
    "resources": [{
      "created": "2020-02-05T09:10:21.120311",
      "download_url": "https://data.example.org/dataset/afg/resource/1/download/wfp_food_prices_afg.csv"
    }]
  }
}`

func newTestServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/3/action/package_show":
			switch r.URL.Query().Get("id") {
			case "wfp-food-prices-for-afghanistan":
				_, _ = w.Write([]byte(packageShowResponse))
			case "no-group":
				_, _ = w.Write([]byte(`{"success": true, "result": {"id": "x", "groups": [], "resources": []}}`))
			default:
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"success": false, "error": {"message": "Not found"}}`))
			}
		case "/prices.csv":
			assert.Equal(t, "csv", r.URL.Query().Get("downloadformat"))
			_, _ = w.Write([]byte("date,market,price\n#date,#loc+market,#value\n2023-01-15,Kabul,45.5\n2023-02-15,Herat,46\n"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
}

func TestDataset(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	c := hdx.New(ts.URL, nil)
	country, err := c.Dataset("wfp-food-prices-for-afghanistan")
	assert.Nil(t, err, "wrong Dataset")
	assert.Equal(t, "dataset-afg", country.ID)
	assert.Equal(t, "AFG", country.CountryID)
	assert.Equal(t, "AFGHANISTAN", country.CountryName)
	assert.Equal(t, "wfp-food-prices-for-afghanistan", country.Name)
	assert.False(t, country.Archived)
	assert.Equal(t, "2023-11-22T08:49:54", country.DueDate)
	assert.Equal(t, "2023-12-22T08:49:54", country.OverdueDate)
	assert.Equal(t, "2020-02-05T09:10:21.120311", country.ResourceCreated)
	assert.Equal(t, "wfp_food_prices_afg.csv", country.FileName)
	assert.Empty(t, country.Key)
}

func TestDatasetNotFound(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	_, err := hdx.New(ts.URL, nil).Dataset("unknown")
	assert.True(t, errors.Is(err, hdx.ErrDatasetNotFound))
}

func TestDatasetIncomplete(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	_, err := hdx.New(ts.URL, nil).Dataset("no-group")
	assert.Equal(t, hdx.ErrIncompleteDataset, err)
}

func TestReferencePeriod(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	p, err := hdx.New(ts.URL, nil).ReferencePeriod("wfp-food-prices-for-afghanistan")
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2000, 1, 15, 0, 0, 0, 0, time.UTC), p.StartDate)
	assert.Equal(t, time.Date(2023, 11, 15, 23, 59, 59, 0, time.UTC), p.EndDate)
	assert.False(t, p.Ongoing)
}

func TestParseReferencePeriodOngoing(t *testing.T) {
	p, err := hdx.ParseReferencePeriod("[2020-01-15T00:00:00 TO *]")
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC), p.StartDate)
	assert.True(t, p.EndDate.IsZero())
	assert.True(t, p.Ongoing)
}

func TestParseReferencePeriodInvalid(t *testing.T) {
	for _, s := range []string{"", "2000-01-15", "[2000-01-15T00:00:00]", "[a TO b]", "[* TO *]"} {
		_, err := hdx.ParseReferencePeriod(s)
		assert.Equal(t, hdx.ErrInvalidReferencePeriod, err, s)
	}
}

func TestPrices(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	table, err := hdx.New(ts.URL, nil).Prices(ts.URL + "/prices.csv")
	assert.Nil(t, err)
	assert.Equal(t, []string{"date", "market", "price"}, table.Columns)
	assert.Equal(t, [][]string{
		{"2023-01-15", "Kabul", "45.5"},
		{"2023-02-15", "Herat", "46"},
	}, table.Rows)
}

func TestPricesServerError(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	_, err := hdx.New(ts.URL, nil).Prices(ts.URL + "/broken.csv")
	assert.True(t, errors.Is(err, hdx.ErrInvalidResponse))
}
