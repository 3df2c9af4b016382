package controllers

import (
	"fmt"
	"strconv"

	"fiber-admin/config"
	"fiber-admin/services"
	"fiber-admin/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB     *gorm.DB
	Mailer *utils.Mailer
}

func NewUserController(DB *gorm.DB) *UserController {
	mailer := utils.NewMailer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	return &UserController{DB: DB, Mailer: mailer}
}

// Page daftar user dengan nama role.
func (uc *UserController) Page(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	pageSize := ctx.QueryInt("pageSize", 10)
	username := ctx.Query("username")

	service := services.NewUserService(uc.DB, uc.Mailer)
	items, total, err := service.PageUsers(page, pageSize, username)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Paginate(ctx, items, page, pageSize, total)
}

// List seluruh user hidup.
func (uc *UserController) List(ctx *fiber.Ctx) error {
	service := services.NewUserService(uc.DB, uc.Mailer)
	users, err := service.ListUsers()
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Success(ctx, users)
}

// Detail user plus role-nya.
func (uc *UserController) Detail(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Query("id"), 10, 64)
	if err != nil {
		return utils.Error(ctx, 400, "missing or invalid parameter: id")
	}

	service := services.NewUserService(uc.DB, uc.Mailer)
	user, roles, err := service.UserDetail(uint(id))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Success(ctx, fiber.Map{
		"user":  user,
		"roles": roles,
	})
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email"`
	Status   int    `json:"status"`
	RoleIDs  []uint `json:"roleIds"`
}

// Create buat user baru.
func (uc *UserController) Create(ctx *fiber.Ctx) error {
	var req createUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.Error(ctx, 400, "invalid request body")
	}
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return utils.Error(ctx, 400, "username and password are required")
	}

	service := services.NewUserService(uc.DB, uc.Mailer)
	user, err := service.CreateUser(services.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Status:   req.Status,
		RoleIDs:  req.RoleIDs,
	})
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, user, "user created")
}

type updateUserRequest struct {
	Email   string `json:"email"`
	Status  int    `json:"status"`
	RoleIDs []uint `json:"roleIds"`
}

// Update ubah email, status, dan role user.
func (uc *UserController) Update(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil {
		return utils.Error(ctx, 400, "invalid user id")
	}

	var req updateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.Error(ctx, 400, "invalid request body")
	}

	service := services.NewUserService(uc.DB, uc.Mailer)
	user, err := service.UpdateUser(uint(id), services.UpdateUserInput{
		Email:   req.Email,
		Status:  req.Status,
		RoleIDs: req.RoleIDs,
	})
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, user, "user updated")
}

// UpdatePassword ganti password user yang sedang login.
func (uc *UserController) UpdatePassword(ctx *fiber.Ctx) error {
	var req struct {
		OldPassword string `json:"oldPassword" validate:"required"`
		NewPassword string `json:"newPassword" validate:"required,min=6"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return utils.Error(ctx, 400, "invalid request body")
	}
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return utils.Error(ctx, 400, "old and new password are required")
	}

	service := services.NewUserService(uc.DB, uc.Mailer)
	if err := service.UpdatePassword(currentUserID(ctx), req.OldPassword, req.NewPassword); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, nil, "password updated")
}

// Delete soft delete user.
func (uc *UserController) Delete(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil {
		return utils.Error(ctx, 400, "invalid user id")
	}
	service := services.NewUserService(uc.DB, uc.Mailer)
	if err := service.DeleteUser(uint(id)); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, nil, "user deleted")
}

// Authorize data widget otorisasi user.
func (uc *UserController) Authorize(ctx *fiber.Ctx) error {
	userID, err := strconv.ParseUint(ctx.Query("userId"), 10, 64)
	if err != nil {
		return utils.Error(ctx, 400, "missing or invalid parameter: userId")
	}

	service := services.NewUserService(uc.DB, uc.Mailer)
	data, err := service.Authorize(uint(userID))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Success(ctx, data)
}

// SaveAuthorize simpan grant menu user lewat role-nya.
func (uc *UserController) SaveAuthorize(ctx *fiber.Ctx) error {
	var req struct {
		UserID  uint   `json:"userId" validate:"required"`
		MenuIDs []uint `json:"menuIds"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return utils.Error(ctx, 400, "invalid request body")
	}
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return utils.Error(ctx, 400, "missing required parameter: userId")
	}

	service := services.NewUserService(uc.DB, uc.Mailer)
	if err := service.SaveAuthorize(req.UserID, req.MenuIDs); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, nil, "user authorization saved")
}

// ExportExcel unduh daftar user sebagai file Excel.
func (uc *UserController) ExportExcel(ctx *fiber.Ctx) error {
	service := services.NewUserService(uc.DB, uc.Mailer)
	users, err := service.ListUsers()
	if err != nil {
		return respondServiceError(ctx, err)
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "ID")
	f.SetCellValue(sheet, "B1", "Username")
	f.SetCellValue(sheet, "C1", "Email")
	f.SetCellValue(sheet, "D1", "Status")
	f.SetCellValue(sheet, "E1", "Created At")

	for i, user := range users {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), user.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), user.Username)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), user.Email)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), user.Status)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), user.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="users.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("failed to generate Excel file")
	}
	return nil
}
