package api

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/foodprice-api/figure"
)

var pageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<script src="https://cdn.plot.ly/plotly-2.27.0.min.js"></script>
</head>
<body>
<header>
<h1>{{ .Title }}</h1>
<hr>
<h2>Exploring Worldwide Crop Prices: Tracking Trends And Variations Across Different Regions</h2>
<hr>
</header>
<main>
<div id="world-map"></div>
<label><input type="checkbox" id="projection-switch" checked> mercator</label>
</main>
<script>
function loadWorldMap(on) {
  fetch("api/map?on=" + on)
    .then(function (resp) { return resp.json(); })
    .then(function (fig) { Plotly.react("world-map", fig.data, fig.layout); });
}
document.getElementById("projection-switch").addEventListener("change", function (e) {
  loadWorldMap(e.target.checked);
});
loadWorldMap(true);
</script>
</body>
</html>
`))

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{
		"Title": viper.GetString("server.title"),
	})
}

// worldMap returns the world map figure. The projection comes from the
// `projection` query, or from the `on` switch state when it is absent.
func (s *Server) worldMap(c *gin.Context) {
	projection := c.Query("projection")
	if projection == "" {
		on := true
		if v := c.Query("on"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
				return
			}
			on = b
		}
		projection = figure.ProjectionFor(on)
	}

	b, err := s.renderer.Render(projection)
	if shouldInterupt(err, c) {
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", b)
}
