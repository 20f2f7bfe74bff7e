package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edusentry/backend/core/alert"
)

type alertAPI struct {
	svc *alert.Service
}

func registerAlertAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *alert.Service) {
	api := alertAPI{svc: svc}

	ng := g.Group("/notifications", jwt, adminMiddleware())
	ng.GET("", api.query)
	ng.POST("/read-all", api.markAllRead)
	ng.POST("/:id/read", api.markRead)
}

func (api *alertAPI) query(ctx echo.Context) error {
	notifs, err := api.svc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, notifs)
}

func (api *alertAPI) markRead(ctx echo.Context) error {
	if err := api.svc.MarkRead(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *alertAPI) markAllRead(ctx echo.Context) error {
	if err := api.svc.MarkAllRead(); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
