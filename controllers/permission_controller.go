package controllers

import (
	"strconv"

	"fiber-admin/services"
	"fiber-admin/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PermissionController struct {
	DB *gorm.DB
}

func NewPermissionController(DB *gorm.DB) *PermissionController {
	return &PermissionController{DB: DB}
}

// Page daftar permission.
func (pc *PermissionController) Page(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	pageSize := ctx.QueryInt("pageSize", 10)
	name := ctx.Query("name")

	service := services.NewPermissionService(pc.DB)
	items, total, err := service.PagePermissions(page, pageSize, name)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Paginate(ctx, items, page, pageSize, total)
}

// List seluruh permission hidup.
func (pc *PermissionController) List(ctx *fiber.Ctx) error {
	service := services.NewPermissionService(pc.DB)
	permissions, err := service.ListPermissions()
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Success(ctx, permissions)
}

type permissionRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// Create buat permission baru; nama yang sudah dipakai ditolak.
func (pc *PermissionController) Create(ctx *fiber.Ctx) error {
	var req permissionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.Error(ctx, 400, "invalid request body")
	}
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return utils.Error(ctx, 400, "permission name is required")
	}

	service := services.NewPermissionService(pc.DB)
	permission, err := service.CreatePermission(req.Name, req.Description)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, permission, "permission created")
}

// Update ubah permission.
func (pc *PermissionController) Update(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil {
		return utils.Error(ctx, 400, "invalid permission id")
	}

	var req permissionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.Error(ctx, 400, "invalid request body")
	}
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return utils.Error(ctx, 400, "permission name is required")
	}

	service := services.NewPermissionService(pc.DB)
	permission, err := service.UpdatePermission(uint(id), req.Name, req.Description)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, permission, "permission updated")
}

// Delete soft delete permission.
func (pc *PermissionController) Delete(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil {
		return utils.Error(ctx, 400, "invalid permission id")
	}
	service := services.NewPermissionService(pc.DB)
	if err := service.DeletePermission(uint(id)); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, nil, "permission deleted")
}
