package http

import (
	"fmt"
	"net/http"
	"net/http/pprof"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wardenwallet/swapquote/domain"
	"github.com/wardenwallet/swapquote/log"

	"github.com/labstack/echo/v4"
)

type SystemHandler struct {
	logger log.Logger
	config domain.Config
}

const (
	versionPlaceholder    = "version="
	whiteSpacePlaceholder = " "

	// providerHealthPath is served by every configured parameters endpoint.
	providerHealthPath = "/v2/health"

	healthCheckTimeout = 5 * time.Second
)

// NewSystemHandler will initialize the /debug/pprof resources endpoint
func NewSystemHandler(e *echo.Echo, config domain.Config, logger log.Logger) {
	handler := &SystemHandler{
		logger: logger,
		config: config,
	}

	// if debug mod, enable additional profiles that are too intensive
	// for production.
	if !config.LoggerIsProduction {
		runtime.SetMutexProfileFraction(2)
		runtime.SetBlockProfileRate(2)
	}

	e.GET("/debug/pprof/*", echo.WrapHandler(http.DefaultServeMux))
	e.GET("/debug/pprof/cmdline", echo.WrapHandler(http.HandlerFunc(pprof.Cmdline)))
	e.GET("/debug/pprof/profile", echo.WrapHandler(http.HandlerFunc(pprof.Profile)))
	e.GET("/debug/pprof/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	e.GET("/debug/pprof/trace", echo.WrapHandler(http.HandlerFunc(pprof.Trace)))

	e.GET("/healthcheck", handler.GetHealthStatus)
	e.GET("/config", handler.GetConfig)
	e.GET("/version", handler.GetVersion)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// GetConfig returns the config for the swap quote service
func (h *SystemHandler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, h.config)
}

func (h *SystemHandler) GetVersion(c echo.Context) error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read build info")
	}

	for _, setting := range buildInfo.Settings {
		if setting.Key == "-ldflags" {
			version, err := extractVersion(setting.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("failed to extract version information: %v", err))
			}

			return c.JSON(http.StatusOK, version)
		}
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "failed to find version information")
}

// extractVersion extracts the version string from the ldflags
func extractVersion(ldFlagsValueStr string) (string, error) {
	index := strings.Index(ldFlagsValueStr, versionPlaceholder)
	if index == -1 {
		return "", fmt.Errorf("No version string found")
	}

	substring := ldFlagsValueStr[index+len(versionPlaceholder):]

	index = strings.Index(substring, whiteSpacePlaceholder)
	if index == -1 {
		// version was the last flag
		return substring, nil
	}

	return substring[:index], nil
}

// GetHealthStatus handles health check requests for the upstream provider
func (h *SystemHandler) GetHealthStatus(c echo.Context) error {
	if h.config.Provider == nil || h.config.Provider.MidgardURL == "" {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "No provider endpoint configured")
	}

	client := http.Client{Timeout: healthCheckTimeout}
	url := h.config.Provider.MidgardURL + providerHealthPath

	resp, err := client.Get(url)
	if err != nil {
		h.logger.Error("Error checking provider status", zap.Error(err))
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Error connecting to the swap provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return echo.NewHTTPError(http.StatusServiceUnavailable, fmt.Sprintf("Provider health endpoint returned %d", resp.StatusCode))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"provider_status": "running",
	})
}
