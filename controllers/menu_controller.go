package controllers

import (
	"strconv"

	"fiber-admin/models"
	"fiber-admin/services"
	"fiber-admin/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(DB *gorm.DB) *MenuController {
	return &MenuController{DB: DB}
}

// List sidebar menu tree milik user yang sedang login.
func (mc *MenuController) List(ctx *fiber.Ctx) error {
	service := services.NewMenuService(mc.DB)
	tree, err := service.UserMenuTree(currentRoleIDs(ctx))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Success(ctx, tree)
}

// Page tree menu dengan filter dan paginasi di level root.
func (mc *MenuController) Page(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	pageSize := ctx.QueryInt("pageSize", 10)
	label := ctx.Query("label")
	labelEn := ctx.Query("labelEn")

	var state *int
	if raw := ctx.Query("state"); raw != "" {
		parsed, err := models.ParseMenuState(raw)
		if err != nil {
			return utils.Error(ctx, 400, err.Error())
		}
		state = &parsed
	}

	service := services.NewMenuService(mc.DB)
	items, total, err := service.PageMenus(currentUserID(ctx), page, pageSize, label, labelEn, state)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Paginate(ctx, items, page, pageSize, total)
}

// Tree seluruh menu hidup untuk widget pemilihan.
func (mc *MenuController) Tree(ctx *fiber.Ctx) error {
	service := services.NewMenuService(mc.DB)
	tree, err := service.SelectTree()
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Success(ctx, tree)
}

// Detail satu menu.
func (mc *MenuController) Detail(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Query("id"), 10, 64)
	if err != nil {
		return utils.Error(ctx, 400, "missing or invalid parameter: id")
	}
	service := services.NewMenuService(mc.DB)
	menu, err := service.MenuDetail(uint(id))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Success(ctx, menu)
}

type menuRequest struct {
	Label        string            `json:"label" validate:"required"`
	LabelEn      string            `json:"labelEn"`
	Icon         string            `json:"icon"`
	Router       string            `json:"router"`
	Rule         string            `json:"rule"`
	Type         int               `json:"type" validate:"required,min=1,max=3"`
	Order        int               `json:"order"`
	State        interface{}       `json:"state"`
	ParentID     *uint             `json:"parentId"`
	Actions      []string          `json:"actions"`
	ActionLabels map[string]string `json:"actionLabels"`
}

func (r *menuRequest) state() (int, error) {
	if r.State == nil {
		return models.MenuStateVisible, nil
	}
	return models.ParseMenuState(r.State)
}

// Create buat menu baru, opsional dengan bundel tombol action.
func (mc *MenuController) Create(ctx *fiber.Ctx) error {
	var req menuRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.Error(ctx, 400, "invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return utils.Error(ctx, 400, "missing required parameter: label or type")
	}

	state, err := req.state()
	if err != nil {
		return utils.Error(ctx, 400, err.Error())
	}

	service := services.NewMenuService(mc.DB)
	menu, err := service.CreateMenu(services.CreateMenuInput{
		Label:        req.Label,
		LabelEn:      req.LabelEn,
		Icon:         req.Icon,
		Router:       req.Router,
		Rule:         req.Rule,
		Type:         req.Type,
		Order:        req.Order,
		State:        state,
		ParentID:     req.ParentID,
		Actions:      req.Actions,
		ActionLabels: req.ActionLabels,
	}, currentUserID(ctx))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, menu, "menu created")
}

// Update ubah menu yang sudah ada.
func (mc *MenuController) Update(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil {
		return utils.Error(ctx, 400, "invalid menu id")
	}

	var req menuRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.Error(ctx, 400, "invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return utils.Error(ctx, 400, "missing required parameter: label or type")
	}

	state, err := req.state()
	if err != nil {
		return utils.Error(ctx, 400, err.Error())
	}

	service := services.NewMenuService(mc.DB)
	menu, err := service.UpdateMenu(uint(id), services.UpdateMenuInput{
		Label:    req.Label,
		LabelEn:  req.LabelEn,
		Icon:     req.Icon,
		Router:   req.Router,
		Type:     req.Type,
		Order:    req.Order,
		State:    state,
		ParentID: req.ParentID,
	})
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, menu, "menu updated")
}

// ChangeState ubah state Hidden/Visible satu menu.
func (mc *MenuController) ChangeState(ctx *fiber.Ctx) error {
	var req struct {
		ID    uint        `json:"id" validate:"required"`
		State interface{} `json:"state"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return utils.Error(ctx, 400, "invalid request body")
	}
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return utils.Error(ctx, 400, "missing required parameter: id")
	}
	state, err := models.ParseMenuState(req.State)
	if err != nil {
		return utils.Error(ctx, 400, err.Error())
	}

	service := services.NewMenuService(mc.DB)
	if err := service.ChangeState(req.ID, state); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, nil, "menu state updated")
}

// Delete soft delete menu; ditolak selama masih ada submenu hidup.
func (mc *MenuController) Delete(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil {
		return utils.Error(ctx, 400, "invalid menu id")
	}
	service := services.NewMenuService(mc.DB)
	if err := service.DeleteMenu(uint(id)); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, nil, "menu deleted")
}

// Purge hard delete menu, tidak bisa dibatalkan.
func (mc *MenuController) Purge(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil {
		return utils.Error(ctx, 400, "invalid menu id")
	}
	service := services.NewMenuService(mc.DB)
	if err := service.PurgeMenu(uint(id)); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, nil, "menu purged")
}
