package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/edusentry/backend/core"
	"github.com/edusentry/backend/core/audit"
	"github.com/edusentry/backend/core/user"
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
		Portal   string `json:"portal" validate:"required,oneof=STUDENT ADMIN"`
	}

	LoginResponse struct {
		Token string    `json:"token"`
		User  user.User `json:"user"`
	}

	StatusUpdateRequest struct {
		Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	}

	userAPI struct {
		svc      *user.Service
		auditSvc *audit.Service
		validate *validator.Validate
		conf     *core.Config
	}
)

func registerUserAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *user.Service, auditSvc *audit.Service, validate *validator.Validate, conf *core.Config) {
	api := userAPI{svc: svc, auditSvc: auditSvc, validate: validate, conf: conf}

	ug := g.Group("/users")
	ug.POST("/login", api.login)
	ug.POST("/register", api.register)

	ag := ug.Group("", jwt)
	ag.GET("", api.query, adminMiddleware())
	ag.GET("/:id", api.retrieve)
	ag.PUT("/:id/status", api.updateStatus, adminMiddleware())
}

func (api *userAPI) login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	req.Email = core.CleanString(req.Email, true /* lower */)
	req.Portal = core.CleanString(req.Portal)
	if err := api.validate.Struct(&req); err != nil {
		return err
	}

	usr, err := api.svc.Authenticate(req.Email, req.Password, req.Portal)
	switch err {
	case nil:
	case user.ErrInvalidCredentials:
		return core.NewValidationError(err)
	case user.ErrWrongPortal, user.ErrAccountPending, user.ErrAccountRejected:
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return err
	}

	token, err := GenerateToken(api.conf, GetUserClaims(api.conf, usr))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, User: usr})
}

func (api *userAPI) register(ctx echo.Context) error {
	var nu user.NewUser
	if err := ctx.Bind(&nu); err != nil {
		return err
	}
	if err := nu.Validate(api.validate, api.svc); err != nil {
		return err
	}

	usr, err := api.svc.Register(nu)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, usr)
}

func (api *userAPI) query(ctx echo.Context) error {
	users, err := api.svc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *userAPI) retrieve(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}
	id := ctx.Param("id")
	// students can only look themselves up
	if !claims.IsAdmin && claims.Subject != id {
		return errHTTPForbidden
	}

	usr, err := api.svc.GetByID(id)
	if err == user.ErrNotFound {
		return errHTTPNotFound
	} else if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *userAPI) updateStatus(ctx echo.Context) error {
	var req StatusUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	req.Status = core.CleanString(req.Status)
	if err := api.validate.Struct(&req); err != nil {
		return err
	}

	actor, err := getContextUser(ctx, api.svc)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	usr, err := api.svc.SetStatus(ctx.Param("id"), req.Status)
	switch err {
	case nil:
	case user.ErrNotFound:
		return errHTTPNotFound
	case user.ErrStatusResolved:
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return err
	}

	if _, err := api.auditSvc.LogAction(actor, "Registration "+usr.Status, usr.ID, usr.Name); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}
