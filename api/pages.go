package api

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"weather-dashboard/dashboard"

	"github.com/gin-gonic/gin"
)

// handleIndex shows the search form, or redirects a submitted search to its page
func (s *Server) handleIndex(c *gin.Context) {
	if city := strings.TrimSpace(c.Query("city")); city != "" {
		c.Redirect(http.StatusFound, "/weather/"+url.PathEscape(city))
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": "Weather"})
}

// handleWeatherPage renders the dashboard for the city in the path
func (s *Server) handleWeatherPage(c *gin.Context) {
	city := strings.TrimSpace(c.Param("city"))

	props, err := s.assembler.Props(c.Request.Context(), city)
	if err != nil {
		s.renderFailure(c, city, err)
		return
	}

	locale := dashboard.MatchLocale(c.GetHeader("Accept-Language"))
	view, err := dashboard.NewView(props, s.now(), locale)
	if err != nil {
		s.renderFailure(c, city, err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":         view.Title(),
		"View":          view,
		"EChartsScript": dashboard.EChartsScript,
	})
}

func (s *Server) handleNoRoute(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", gin.H{"Title": "Not found", "City": ""})
}

// renderFailure shows the not-found page for unknown cities and an error page
// for everything else
func (s *Server) renderFailure(c *gin.Context, city string, err error) {
	log.Printf("Weather page for %q failed: %v", city, err)

	status := statusFor(err)
	switch status {
	case http.StatusNotFound:
		c.HTML(status, "notfound.html", gin.H{"Title": "Not found", "City": city})
	case http.StatusBadRequest:
		c.HTML(status, "error.html", gin.H{
			"Title":   "Invalid city",
			"Message": "Please enter a city name.",
		})
	default:
		c.HTML(status, "error.html", gin.H{
			"Title":   "Service unavailable",
			"Message": "The weather service could not be reached. Please try again later.",
		})
	}
}
