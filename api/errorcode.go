package api

import (
	"github.com/bitmark-inc/foodprice-api/catalog"
	"github.com/bitmark-inc/foodprice-api/external/hdx"
	"github.com/bitmark-inc/foodprice-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid api token",

		1010: "invalid parameters",

		1100: store.ErrCountryNotFound.Error(),
		1101: store.ErrMapNotFound.Error(),
		1102: catalog.ErrDatasetNotListed.Error(),

		1200: hdx.ErrDatasetNotFound.Error(),
		1201: "dataset catalog unavailable",
		1202: hdx.ErrInvalidReferencePeriod.Error(),

		1300: "cannot enqueue ingestion",
	}

	errorInternalServer = errorJSON(999)
	errorInvalidToken   = errorJSON(1000)

	errorInvalidParameters = errorJSON(1010)

	errorCountryNotFound  = errorJSON(1100)
	errorMapNotFound      = errorJSON(1101)
	errorDatasetNotListed = errorJSON(1102)

	errorDatasetNotFound        = errorJSON(1200)
	errorCatalogUnavailable     = errorJSON(1201)
	errorInvalidReferencePeriod = errorJSON(1202)

	errorEnqueueIngestion = errorJSON(1300)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
