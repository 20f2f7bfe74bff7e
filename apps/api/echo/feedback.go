package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edusentry/backend/core/feedback"
	"github.com/edusentry/backend/core/user"
)

type (
	FeedbackRequest struct {
		Message string `json:"message"`
	}

	feedbackAPI struct {
		svc    *feedback.Service
		usrSvc *user.Service
	}
)

func registerFeedbackAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *feedback.Service, usrSvc *user.Service) {
	api := feedbackAPI{svc: svc, usrSvc: usrSvc}

	fg := g.Group("/feedback", jwt)
	fg.POST("", api.create)
	fg.GET("", api.query, adminMiddleware())
}

func (api *feedbackAPI) create(ctx echo.Context) error {
	var req FeedbackRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	student, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	fb, err := api.svc.Add(student, req.Message)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, fb)
}

func (api *feedbackAPI) query(ctx echo.Context) error {
	fbs, err := api.svc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, fbs)
}
