package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-api/internal/application/auth"
	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/pkg/logger"
)

const msgInternal = "Internal server error"

// UserHandler maneja registro, login, perfil y saldo de usuarios.
type UserHandler struct {
	auth *auth.AuthUseCase
	uc   *usecase.UserUseCase
	log  *logger.Logger
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(authUC *auth.AuthUseCase, uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{auth: authUC, uc: uc, log: log}
}

// credentials lee las credenciales de la query string y del cuerpo; el cuerpo tiene prioridad.
func credentials(c *fiber.Ctx, query, body any) error {
	if err := c.QueryParser(query); err != nil {
		return err
	}
	return bind(c, body)
}

func pick(body, query string) string {
	if body != "" {
		return body
	}
	return query
}

// Register godoc
// @Summary      Registrar usuario
// @Description  Acepta name, email y password en la query string o en el cuerpo.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        name      query  string  false  "Nombre"
// @Param        email     query  string  false  "Email"
// @Param        password  query  string  false  "Password"
// @Param        body      body   dto.RegisterRequest  false  "Credenciales"
// @Success      201  {object}  dto.Envelope{payload=dto.UserResponse}
// @Failure      400  {object}  dto.Envelope
// @Router       /user/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var q, b dto.RegisterRequest
	if err := credentials(c, &q, &b); err != nil {
		return badRequest(c, "Invalid request body")
	}
	in := dto.RegisterRequest{
		Name:     pick(b.Name, q.Name),
		Email:    pick(b.Email, q.Email),
		Password: pick(b.Password, q.Password),
	}
	if err := dto.Validate(in); err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) {
			return badRequest(c, "Invalid email format")
		}
		return badRequest(c, msgMissingFields)
	}
	out, err := h.auth.RegisterUser(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return fail(c, fiber.StatusBadRequest, dto.CodeConflict, "Email already used")
		}
		return internalError(c, h.log, "user.register", err, msgInternal)
	}
	return ok(c, fiber.StatusCreated, "User created", out)
}

// Login godoc
// @Summary      Verificar credenciales
// @Description  No emite token: devuelve el usuario si email y password coinciden.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        email     query  string  false  "Email"
// @Param        password  query  string  false  "Password"
// @Param        body      body   dto.LoginRequest  false  "Credenciales"
// @Success      200  {object}  dto.Envelope{payload=dto.UserResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      401  {object}  dto.Envelope
// @Router       /user/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var q, b dto.LoginRequest
	if err := credentials(c, &q, &b); err != nil {
		return badRequest(c, "Invalid request body")
	}
	in := dto.LoginRequest{
		Email:    pick(b.Email, q.Email),
		Password: pick(b.Password, q.Password),
	}
	if err := dto.Validate(in); err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) {
			return badRequest(c, "Invalid email format")
		}
		return badRequest(c, "Missing email or password")
	}
	out, err := h.auth.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return fail(c, fiber.StatusUnauthorized, dto.CodeUnauthorized, "Invalid email or password")
		}
		return internalError(c, h.log, "user.login", err, msgInternal)
	}
	return ok(c, fiber.StatusOK, "Login success", out)
}

// GetByEmail godoc
// @Summary      Obtener usuario por email
// @Tags         user
// @Produce      json
// @Param        email  path  string  true  "Email"
// @Success      200  {object}  dto.Envelope{payload=dto.UserResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /user/{email} [get]
func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	email, err := url.PathUnescape(c.Params("email"))
	if err != nil || !domain.IsValidEmail(email) {
		return badRequest(c, "Invalid email format")
	}
	out, err := h.uc.GetByEmail(c.UserContext(), email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return internalError(c, h.log, "user.getByEmail", err, msgInternal)
	}
	return ok(c, fiber.StatusOK, "User found", out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Description  Reemplazo completo: id, name, email y password son obligatorios.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateUserRequest  true  "Usuario"
// @Success      200  {object}  dto.Envelope{payload=dto.UserResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /user [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := bind(c, &in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			return badRequest(c, "Invalid user ID format")
		case errors.Is(err, domain.ErrInvalidEmail):
			return badRequest(c, "Invalid email format")
		}
		return badRequest(c, msgMissingFields)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return notFound(c, "User not found")
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return fail(c, fiber.StatusBadRequest, dto.CodeConflict, "Email already used")
		}
		return internalError(c, h.log, "user.update", err, msgInternal)
	}
	return ok(c, fiber.StatusOK, "User updated", out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         user
// @Produce      json
// @Param        id   path  string  true  "ID del usuario (UUID)"
// @Success      200  {object}  dto.Envelope{payload=dto.UserSummaryResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /user/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if !domain.IsValidUUID(id) {
		return badRequest(c, "Invalid user ID format")
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return internalError(c, h.log, "user.delete", err, msgInternal)
	}
	return ok(c, fiber.StatusOK, "User deleted", out)
}

// TopUp godoc
// @Summary      Recargar saldo
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TopUpRequest  true  "id y amount (entero > 0)"
// @Success      200  {object}  dto.Envelope{payload=dto.TopUpResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /user/topUp [post]
func (h *UserHandler) TopUp(c *fiber.Ctx) error {
	var in dto.TopUpRequest
	if err := bind(c, &in); err != nil {
		return badRequest(c, "Invalid user ID or amount")
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, "Invalid user ID or amount")
	}
	amount, err := dto.Int64(in.Amount)
	if err != nil {
		return badRequest(c, "Invalid user ID or amount")
	}
	out, err := h.uc.TopUp(c.UserContext(), in.ID, amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return notFound(c, "User not found")
		case errors.Is(err, domain.ErrInvalidAmount):
			return badRequest(c, "Invalid user ID or amount")
		}
		return internalError(c, h.log, "user.topUp", err, msgInternal)
	}
	return ok(c, fiber.StatusOK, "Balance topped up successfully", out)
}

// GetBalance godoc
// @Summary      Consultar saldo
// @Tags         user
// @Produce      json
// @Param        id   path  string  true  "ID del usuario (UUID)"
// @Success      200  {object}  dto.Envelope{payload=dto.BalanceResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /user/balance/{id} [get]
func (h *UserHandler) GetBalance(c *fiber.Ctx) error {
	id := c.Params("id")
	if !domain.IsValidUUID(id) {
		return badRequest(c, "Invalid user ID format")
	}
	out, err := h.uc.GetBalance(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return internalError(c, h.log, "user.getBalance", err, msgInternal)
	}
	return ok(c, fiber.StatusOK, "User balance retrieved", out)
}
