package controllers

import (
	"strconv"

	"fiber-admin/services"
	"fiber-admin/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RoleController struct {
	DB *gorm.DB
}

func NewRoleController(DB *gorm.DB) *RoleController {
	return &RoleController{DB: DB}
}

// Page daftar role dengan jumlah grant.
func (rc *RoleController) Page(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	pageSize := ctx.QueryInt("pageSize", 10)
	name := ctx.Query("name")

	service := services.NewRoleService(rc.DB)
	items, total, err := service.PageRoles(page, pageSize, name)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Paginate(ctx, items, page, pageSize, total)
}

// List seluruh role hidup.
func (rc *RoleController) List(ctx *fiber.Ctx) error {
	service := services.NewRoleService(rc.DB)
	roles, err := service.ListRoles()
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Success(ctx, roles)
}

type roleRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Authorize   []uint `json:"authorize"`
}

// Create buat role baru, opsional langsung dengan grant menu.
func (rc *RoleController) Create(ctx *fiber.Ctx) error {
	var req roleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.Error(ctx, 400, "invalid request body")
	}
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return utils.Error(ctx, 400, "role name is required")
	}

	service := services.NewRoleService(rc.DB)
	role, err := service.CreateRole(req.Name, req.Description, req.Authorize)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, role, "role created")
}

// Update ubah role; seluruh grant ditulis ulang kalau authorize dikirim.
func (rc *RoleController) Update(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil {
		return utils.Error(ctx, 400, "invalid role id")
	}

	var req roleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.Error(ctx, 400, "invalid request body")
	}
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return utils.Error(ctx, 400, "role name is required")
	}

	service := services.NewRoleService(rc.DB)
	role, err := service.UpdateRole(uint(id), req.Name, req.Description, req.Authorize)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, role, "role updated")
}

// Detail role plus id menu yang di-grant.
func (rc *RoleController) Detail(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Query("id"), 10, 64)
	if err != nil {
		return utils.Error(ctx, 400, "missing or invalid parameter: id")
	}

	service := services.NewRoleService(rc.DB)
	role, menuIDs, err := service.RoleDetail(uint(id))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Success(ctx, fiber.Map{
		"id":          role.ID,
		"name":        role.Name,
		"description": role.Description,
		"createdAt":   role.CreatedAt,
		"updatedAt":   role.UpdatedAt,
		"authorize":   menuIDs,
	})
}

// Delete soft delete role.
func (rc *RoleController) Delete(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil {
		return utils.Error(ctx, 400, "invalid role id")
	}
	service := services.NewRoleService(rc.DB)
	if err := service.DeleteRole(uint(id)); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, nil, "role deleted")
}

// Authorize data widget otorisasi role.
func (rc *RoleController) Authorize(ctx *fiber.Ctx) error {
	roleID, err := strconv.ParseUint(ctx.Query("roleId"), 10, 64)
	if err != nil {
		return utils.Error(ctx, 400, "missing or invalid parameter: roleId")
	}

	service := services.NewRoleService(rc.DB)
	data, err := service.Authorize(uint(roleID))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Success(ctx, data)
}
