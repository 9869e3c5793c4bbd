package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/commerce-api/internal/core/ports"
)

// UserHandler serves user administration and profile updates.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

var (
	userNotFound    = notFoundMessage("user")
	accountNotFound = notFoundMessage("account")
)

// All handles GET /api/users.
//
// @Summary      List every user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorBody
// @Router       /api/users [get]
func (h *UserHandler) All(c echo.Context) error {
	users, err := h.service.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Page handles GET /api/users/page/:skip/:top and its /search/:search variant.
//
// @Summary      Page through users
// @Description  Also served under /api/users/search/{search}/page/{skip}/{top}; search matches email.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        skip  path      string  true  "Records to skip (default 0)"
// @Param        top   path      string  true  "Page size (default 10)"
// @Success      200   {object}  userPage
// @Failure      403   {object}  errorBody
// @Router       /api/users/page/{skip}/{top} [get]
func (h *UserHandler) Page(c echo.Context) error {
	page, err := h.service.Query(c.Request().Context(), specFromPath(c, ""))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  errorBody
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := intID(c, userNotFound)
	if err != nil {
		return err
	}
	u, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Create handles POST /api/users. The new account always starts with the
// plain user role.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      userRequest  true  "User"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorBody
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	u, err := h.service.Create(c.Request().Context(), ports.UserInput{
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Avatar:      req.Avatar,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Update handles PUT /api/users/:id. The body's password must equal the
// stored one.
//
// @Summary      Update a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      userUpdateRequest  true  "Profile"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorBody
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := intID(c, userNotFound)
	if err != nil {
		return err
	}
	var req userUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	u, err := h.service.Update(c.Request().Context(), id, ports.UserUpdateInput{
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Avatar:      req.Avatar,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Delete handles DELETE /api/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  errorBody
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := intID(c, userNotFound)
	if err != nil {
		return err
	}
	u, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// AccountSetting handles PUT /api/admin/account-setting/:id.
//
// @Summary      Override a user's credentials
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "User id"
// @Param        body  body      accountSettingRequest  true  "New credentials"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorBody
// @Router       /api/admin/account-setting/{id} [put]
func (h *UserHandler) AccountSetting(c echo.Context) error {
	id, err := intID(c, accountNotFound)
	if err != nil {
		return err
	}
	var req accountSettingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	u, err := h.service.UpdateAccount(c.Request().Context(), id, ports.AccountSettingInput{
		NewEmail:    req.NewEmail,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// UserRole handles PUT /api/admin/user-role/:id.
//
// @Summary      Grant a role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "User id"
// @Param        body  body      userRoleRequest  true  "Role"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorBody
// @Router       /api/admin/user-role/{id} [put]
func (h *UserHandler) UserRole(c echo.Context) error {
	id, err := intID(c, accountNotFound)
	if err != nil {
		return err
	}
	var req userRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	u, err := h.service.GrantRole(c.Request().Context(), id, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}
