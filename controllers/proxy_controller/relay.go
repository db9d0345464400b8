package proxy_controller

import (
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

var relayClient = &http.Client{
	Timeout: 30 * time.Second,
}

// Relay godoc
// @Summary Forward a request to a third-party API
// @Description Forwards the request to the target URL, echoing method, JSON body and Authorization header, and returns the target's status and body verbatim. Exists so the browser can reach WooCommerce stores without CORS restrictions.
// @Tags Proxy
// @Accept json
// @Produce json
// @Param url query string true "Percent-encoded target URL"
// @Success 200 "Target response, verbatim"
// @Failure 400 {object} map[string]string "Missing or invalid target URL"
// @Failure 500 {object} map[string]string "Transport failure"
// @Router /proxy [get]
func Relay(c *gin.Context) {
	// Permissive CORS on this route only; the SPA calls stores directly
	// through here.
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusNoContent)
		return
	}

	target := c.Query("url")
	if target == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing url parameter"})
		return
	}

	parsed, err := url.Parse(target)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target URL"})
		return
	}

	var body io.Reader
	switch c.Request.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		body = c.Request.Body
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, target, body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Proxy request failed", "details": err.Error()})
		return
	}

	// Pass through auth and content type, nothing else
	if auth := c.GetHeader("Authorization"); auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if ct := c.GetHeader("Content-Type"); ct != "" {
		req.Header.Set("Content-Type", ct)
	}

	resp, err := relayClient.Do(req)
	if err != nil {
		log.Printf("[proxy.relay] ERROR target=%s err=%v", parsed.Host, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Proxy request failed", "details": err.Error()})
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[proxy.relay] ERROR reading body target=%s err=%v", parsed.Host, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Proxy request failed", "details": err.Error()})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	log.Printf("[proxy.relay] %s %s status=%d bytes=%d", c.Request.Method, parsed.Host, resp.StatusCode, len(respBody))

	// Status and body forwarded unchanged; a target error is
	// indistinguishable from a proxy error beyond the status code.
	c.Data(resp.StatusCode, contentType, respBody)
}
