package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const applicationName = "Zakayo Holdings Management System"

// StatusInfo datos públicos del despliegue.
type StatusInfo struct {
	Environment   string
	DeployContext string
	Netlify       bool
}

// StatusHandler endpoints públicos de estado del sistema.
type StatusHandler struct {
	info StatusInfo
	now  func() time.Time
}

// NewStatusHandler construye el handler.
func NewStatusHandler(info StatusInfo) *StatusHandler {
	return &StatusHandler{info: info, now: time.Now}
}

func (h *StatusHandler) timestamp() string {
	return h.now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// Environment godoc
// @Summary      Estado del entorno de despliegue
// @Tags         status
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/status/environment [get]
func (h *StatusHandler) Environment(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "Active",
		"deploymentInfo": fiber.Map{
			"environment":          h.info.Environment,
			"deployContext":        h.info.DeployContext,
			"isNetlifyEnvironment": h.info.Netlify,
			"timestamp":            h.timestamp(),
		},
		"message": "Zakayo Holdings system is operational",
	})
}

// Hello godoc
// @Summary      Saludo
// @Tags         status
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/status/hello [get]
func (h *StatusHandler) Hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":     "Hello from Zakayo Holdings!",
		"time":        h.timestamp(),
		"application": applicationName,
	})
}

// SystemInfo godoc
// @Summary      Información del sistema
// @Tags         status
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/status/system-info [get]
func (h *StatusHandler) SystemInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "Welcome to Zakayo Holdings API",
		"system":    applicationName,
		"version":   "1.0.0",
		"timestamp": h.timestamp(),
	})
}
