package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/edusentry/backend/core/academic"
)

type academicAPI struct {
	svc      *academic.Service
	validate *validator.Validate
}

func registerAcademicAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *academic.Service, validate *validator.Validate) {
	api := academicAPI{svc: svc, validate: validate}

	ag := g.Group("/academics", jwt)
	ag.POST("", api.submit)
	ag.GET("/profiles", api.profiles, adminMiddleware())
	ag.GET("/students/:id/history", api.history)
}

func (api *academicAPI) submit(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var ns academic.NewSubmission
	if err := ctx.Bind(&ns); err != nil {
		return err
	}
	// students submit their own metrics; admins may submit for any student
	if !claims.IsAdmin {
		ns.StudentID = claims.Subject
		ns.StudentName = claims.Name
	}
	if err := ns.Validate(api.validate); err != nil {
		return err
	}

	pred, err := api.svc.SubmitAndPredict(ctx.Request().Context(), ns)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, pred)
}

func (api *academicAPI) profiles(ctx echo.Context) error {
	profiles, err := api.svc.StudentProfiles()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, profiles)
}

func (api *academicAPI) history(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}
	id := ctx.Param("id")
	if !claims.IsAdmin && claims.Subject != id {
		return errHTTPForbidden
	}

	history, err := api.svc.StudentHistory(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, history)
}
