package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edusentry/backend/core/audit"
)

type auditAPI struct {
	svc *audit.Service
}

func registerAuditAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *audit.Service) {
	api := auditAPI{svc: svc}
	g.GET("/audit-logs", api.query, jwt, adminMiddleware())
}

func (api *auditAPI) query(ctx echo.Context) error {
	entries, err := api.svc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, entries)
}
