package hdx

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/bitmark-inc/foodprice-api/schema"
	"github.com/bitmark-inc/foodprice-api/utils"
)

const (
	logPrefix         = "hdx"
	defaultURL        = "https://data.humdata.org"
	packageShowPath   = "/api/3/action/package_show"
	referenceTimeForm = "2006-01-02T15:04:05"
	ongoingEnd        = "*"
)

var (
	ErrDatasetNotFound        = fmt.Errorf("dataset not found")
	ErrIncompleteDataset      = fmt.Errorf("dataset without country group or resource")
	ErrInvalidResponse        = fmt.Errorf("invalid response")
	ErrInvalidReferencePeriod = fmt.Errorf("invalid reference period")
)

// Catalog - interface to the HDX dataset catalog
type Catalog interface {
	Dataset(name string) (*schema.Country, error)
	ReferencePeriod(name string) (*ReferencePeriod, error)
	Prices(downloadURL string) (*PriceTable, error)
}

// ReferencePeriod is the time range covered by a dataset. An ongoing
// dataset has no end date.
type ReferencePeriod struct {
	StartDate time.Time `json:"startdate"`
	EndDate   time.Time `json:"enddate"`
	Ongoing   bool      `json:"ongoing"`
}

type hdx struct {
	url    string
	client *http.Client
}

// New - new HDX catalog client. An empty url is the public HDX site.
func New(url string, client *http.Client) Catalog {
	u := defaultURL
	if url != "" {
		u = strings.TrimSuffix(url, "/")
	}

	if client == nil {
		client = &http.Client{
			Timeout: 15 * time.Second,
		}
	}

	return &hdx{
		url:    u,
		client: client,
	}
}

func (h *hdx) get(u string) ([]byte, error) {
	resp, err := h.client.Get(u)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		return d, ErrDatasetNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return d, fmt.Errorf("%w: status %d", ErrInvalidResponse, resp.StatusCode)
	}

	return d, nil
}

func (h *hdx) packageShow(name string) (gjson.Result, error) {
	query := fmt.Sprintf("%s%s?id=%s", h.url, packageShowPath, url.QueryEscape(name))

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"dataset": name,
	}).Info("query dataset")

	d, err := h.get(query)
	if err != nil {
		return gjson.Result{}, err
	}

	if !gjson.ValidBytes(d) {
		return gjson.Result{}, ErrInvalidResponse
	}

	if !gjson.GetBytes(d, "success").Bool() {
		return gjson.Result{}, ErrDatasetNotFound
	}

	return gjson.GetBytes(d, "result"), nil
}

// Dataset reads a dataset from the catalog and turns it into a country record
func (h *hdx) Dataset(name string) (*schema.Country, error) {
	result, err := h.packageShow(name)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"dataset": name,
			"error":   err,
		}).Error("could not get data or resource")
		return nil, err
	}

	group := result.Get("groups.0")
	resource := result.Get("resources.0")
	if !group.Exists() || !resource.Exists() {
		return nil, ErrIncompleteDataset
	}

	downloadURL := resource.Get("download_url").String()

	return &schema.Country{
		ID:              result.Get("id").String(),
		Archived:        result.Get("archived").Bool(),
		CountryID:       utils.NormalizeISO(group.Get("id").String()),
		CountryName:     strings.ToUpper(group.Get("display_name").String()),
		Name:            result.Get("name").String(),
		DueDate:         result.Get("due_date").String(),
		OverdueDate:     result.Get("overdue_date").String(),
		ResourceCreated: resource.Get("created").String(),
		DownloadURL:     downloadURL,
		FileName:        fileName(downloadURL),
	}, nil
}

// ReferencePeriod reads the time range of a dataset
func (h *hdx) ReferencePeriod(name string) (*ReferencePeriod, error) {
	result, err := h.packageShow(name)
	if err != nil {
		return nil, err
	}

	return ParseReferencePeriod(result.Get("dataset_date").String())
}

// ParseReferencePeriod parses a dataset date like
// `[2020-01-15T00:00:00 TO 2023-11-15T23:59:59]`. `*` as the end marks an
// ongoing dataset.
func ParseReferencePeriod(s string) (*ReferencePeriod, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, ErrInvalidReferencePeriod
	}

	parts := strings.Split(strings.Trim(s, "[]"), " TO ")
	if len(parts) != 2 {
		return nil, ErrInvalidReferencePeriod
	}

	start, err := time.Parse(referenceTimeForm, strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, ErrInvalidReferencePeriod
	}

	if strings.TrimSpace(parts[1]) == ongoingEnd {
		return &ReferencePeriod{
			StartDate: start,
			Ongoing:   true,
		}, nil
	}

	end, err := time.Parse(referenceTimeForm, strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, ErrInvalidReferencePeriod
	}

	return &ReferencePeriod{
		StartDate: start,
		EndDate:   end,
	}, nil
}

func fileName(downloadURL string) string {
	if downloadURL == "" {
		return ""
	}

	u, err := url.Parse(downloadURL)
	if err != nil {
		return path.Base(downloadURL)
	}
	return path.Base(u.Path)
}
