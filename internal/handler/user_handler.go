package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Rolo3650/sicove-api/internal/apperr"
	"github.com/Rolo3650/sicove-api/internal/model"
	"github.com/Rolo3650/sicove-api/internal/repository"
	"github.com/Rolo3650/sicove-api/internal/validate"
	"github.com/Rolo3650/sicove-api/pkg/jwtutil"
	"github.com/Rolo3650/sicove-api/pkg/logger"
	"github.com/Rolo3650/sicove-api/prometheus"
)

// UserHandler serves login on top of the standard user CRUD routes.
type UserHandler struct {
	repo *repository.UserRepository
	jwt  *jwtutil.JWTUtil
}

func NewUserHandler(repo *repository.UserRepository, jwt *jwtutil.JWTUtil) *UserHandler {
	return &UserHandler{repo: repo, jwt: jwt}
}

// Login checks credentials and mints a signed token for the account.
func (h *UserHandler) Login(c echo.Context) error {
	var payload model.LoginUser
	if err := bindBody(c, &payload); err != nil {
		return err
	}
	if err := validate.Struct(payload); err != nil {
		return err
	}

	user, err := h.repo.Login(c.Request().Context(), payload.Email, payload.Password)
	if err != nil {
		return err
	}

	token, err := h.jwt.GenerateToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return apperr.Internal("Could not generate token", err)
	}

	logger.FromEcho(c).Info("user logged in",
		zap.String("user_id", user.ID.Hex()),
		zap.String("email", user.Email))
	prometheus.LoginCounter.Inc()
	prometheus.ActiveTokensGauge.Inc()

	return respond(c, 200, "User login", map[string]interface{}{
		"user":  user,
		"token": token,
	})
}
