package mapscontroller

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

type resolveInput struct {
	URL string `json:"url"`
}

// ResolveMapsURL expands a shortened maps link by following redirects and
// returning the final URL. Only http and https targets are accepted.
func ResolveMapsURL() gin.HandlerFunc {
	client := &http.Client{Timeout: 10 * time.Second}
	return func(c *gin.Context) {
		var input resolveInput
		if err := c.ShouldBindJSON(&input); err != nil || input.URL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "URL manquante."})
			return
		}

		parsed, err := url.Parse(input.URL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "URL invalide."})
			return
		}

		resp, err := client.Get(parsed.String())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Impossible de résoudre l'URL."})
			return
		}
		defer resp.Body.Close()

		c.JSON(http.StatusOK, gin.H{"resolved_url": resp.Request.URL.String()})
	}
}
