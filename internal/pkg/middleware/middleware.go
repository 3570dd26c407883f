package middleware

import (
	"fmt"
	"strings"

	"resort-booking-service/internal/module/booking/repositories"
	"resort-booking-service/internal/pkg/errors"
	"resort-booking-service/internal/pkg/helpers"
	"resort-booking-service/internal/pkg/log"

	"github.com/gofiber/fiber/v2"
)

type Middleware struct {
	Log  log.Logger
	Repo repositories.Repositories
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	// get token from header
	auth := ctx.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		m.Log.Error(ctx.UserContext(), "error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	token := strings.TrimPrefix(auth, "Bearer ")

	// check with the identity service if the token is valid
	resp, err := m.Repo.ValidateToken(ctx.Context(), token)
	if err != nil {
		m.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	if !resp.IsValid {
		m.Log.Error(ctx.UserContext(), "error validate token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals("user_id", resp.UserID)
	ctx.Locals("email_user", resp.EmailUser)

	return ctx.Next()
}
