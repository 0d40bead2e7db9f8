package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// IndexHandler serves the API root with a map of the public surface.
type IndexHandler struct {
	name    string
	version string
}

func NewIndexHandler(name, version string) *IndexHandler {
	return &IndexHandler{name: name, version: version}
}

type indexResponse struct {
	Message string            `json:"message"`
	Version string            `json:"version"`
	Docs    map[string]string `json:"docs"`
}

// Index handles GET /.
//
// @Summary  API index
// @Tags     meta
// @Produce  json
// @Success  200  {object}  indexResponse
// @Router   / [get]
func (h *IndexHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, indexResponse{
		Message: h.name + " online",
		Version: h.version,
		Docs: map[string]string{
			"healthLive":   "/health/live",
			"healthReady":  "/health/ready",
			"authRegister": "/auth/register",
			"authToken":    "/auth/token",
			"products":     "/products",
			"metrics":      "/metrics",
			"openApi":      "/docs/index.html",
		},
	})
}
