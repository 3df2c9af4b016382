package controllers

import (
	"errors"

	"fiber-admin/authz"
	"fiber-admin/services"
	"fiber-admin/utils"

	"github.com/gofiber/fiber/v2"
)

// respondServiceError petakan error service ke amplop {code,message,data}.
func respondServiceError(ctx *fiber.Ctx, err error) error {
	var exists *services.PermissionExistsError
	if errors.As(err, &exists) {
		return utils.ErrorData(ctx, 409, exists.Error(), fiber.Map{"id": exists.ID})
	}

	switch {
	case errors.Is(err, services.ErrMenuNotFound),
		errors.Is(err, services.ErrRoleNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrPermissionNotFound),
		errors.Is(err, services.ErrArticleNotFound):
		return utils.Error(ctx, 404, err.Error())
	case errors.Is(err, services.ErrMenuHasChildren),
		errors.Is(err, services.ErrMenuOwnParent),
		errors.Is(err, services.ErrButtonNesting),
		errors.Is(err, services.ErrRoleExists),
		errors.Is(err, services.ErrRoleProtected),
		errors.Is(err, services.ErrUserExists):
		return utils.Error(ctx, 409, err.Error())
	case errors.Is(err, services.ErrParentMenuNotFound),
		errors.Is(err, services.ErrUserNoRoles),
		errors.Is(err, authz.ErrActionsWithoutRule):
		return utils.Error(ctx, 400, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrUserDisabled):
		return utils.Error(ctx, 401, err.Error())
	default:
		return utils.Error(ctx, 500, "internal server error: "+err.Error())
	}
}

func currentUserID(ctx *fiber.Ctx) uint {
	if id, ok := ctx.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

func currentRoleIDs(ctx *fiber.Ctx) []uint {
	if ids, ok := ctx.Locals("roleIDs").([]uint); ok {
		return ids
	}
	return nil
}

func currentUsername(ctx *fiber.Ctx) string {
	if name, ok := ctx.Locals("username").(string); ok {
		return name
	}
	return ""
}
