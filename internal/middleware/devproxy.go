package middleware

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"net/url"

	"messaging-dashboard/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProxyPrefix is the path prefix forwarded by the dev proxy.
const ProxyPrefix = "/api"

var errNoUpstream = errors.New("dev proxy upstream is not configured")

// DevProxy forwards /api/* to target with the outbound Host rewritten to the
// target's. The path is passed through unchanged.
//
// An empty or unusable target does not fail construction; it is logged once
// and every proxied request then gets a 502.
func DevProxy(target string, logger *zap.Logger) gin.HandlerFunc {
	logger = logger.Named("dev_proxy")

	upstream, err := parseUpstream(target)
	if err != nil {
		logger.Warn("dev proxy has no usable upstream; /api requests will fail",
			zap.String("target", target), zap.Error(err))
		return func(c *gin.Context) {
			logger.Error("proxy request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "bad_gateway",
				Message: "API upstream is not configured",
			})
		}
	}

	logger.Info("dev proxy enabled", zap.String("prefix", ProxyPrefix), zap.String("target", upstream.String()))

	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(upstream)
			pr.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error("proxy request failed", zap.String("path", r.URL.Path), zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"error":"bad_gateway","message":"API upstream unavailable"}`))
		},
	}

	return func(c *gin.Context) {
		proxy.ServeHTTP(c.Writer, c.Request)
		c.Abort()
	}
}

func parseUpstream(target string) (*url.URL, error) {
	if target == "" {
		return nil, errNoUpstream
	}
	u, err := url.Parse(target)
	if err != nil {
		return nil, err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.New("upstream must be an absolute http(s) URL")
	}
	return u, nil
}
