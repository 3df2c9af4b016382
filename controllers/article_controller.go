package controllers

import (
	"strconv"

	"fiber-admin/services"
	"fiber-admin/types"
	"fiber-admin/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ArticleController struct {
	DB *gorm.DB
}

func NewArticleController(DB *gorm.DB) *ArticleController {
	return &ArticleController{DB: DB}
}

func parseArticleID(raw string) (types.SnowflakeID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	return types.SnowflakeID(id), err
}

// Page daftar artikel dengan filter judul dan status.
func (ac *ArticleController) Page(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	pageSize := ctx.QueryInt("pageSize", 10)
	title := ctx.Query("title")

	var status *int
	if raw := ctx.Query("status"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return utils.Error(ctx, 400, "invalid status")
		}
		status = &parsed
	}

	service := services.NewArticleService(ac.DB)
	items, total, err := service.PageArticles(page, pageSize, title, status)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Paginate(ctx, items, page, pageSize, total)
}

// List seluruh artikel hidup.
func (ac *ArticleController) List(ctx *fiber.Ctx) error {
	service := services.NewArticleService(ac.DB)
	articles, err := service.ListArticles()
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Success(ctx, articles)
}

// Detail satu artikel.
func (ac *ArticleController) Detail(ctx *fiber.Ctx) error {
	id, err := parseArticleID(ctx.Query("id"))
	if err != nil {
		return utils.Error(ctx, 400, "missing or invalid parameter: id")
	}
	service := services.NewArticleService(ac.DB)
	article, err := service.ArticleDetail(id)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Success(ctx, article)
}

type articleRequest struct {
	Title   string `json:"title" validate:"required"`
	Author  string `json:"author"`
	Content string `json:"content"`
	Status  int    `json:"status"`
}

// Create buat artikel baru.
func (ac *ArticleController) Create(ctx *fiber.Ctx) error {
	var req articleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.Error(ctx, 400, "invalid request body")
	}
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return utils.Error(ctx, 400, "article title is required")
	}

	service := services.NewArticleService(ac.DB)
	article, err := service.CreateArticle(services.ArticleInput{
		Title:   req.Title,
		Author:  req.Author,
		Content: req.Content,
		Status:  req.Status,
	}, currentUsername(ctx))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, article, "article created")
}

// Update ubah artikel.
func (ac *ArticleController) Update(ctx *fiber.Ctx) error {
	id, err := parseArticleID(ctx.Params("id"))
	if err != nil {
		return utils.Error(ctx, 400, "invalid article id")
	}

	var req articleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.Error(ctx, 400, "invalid request body")
	}
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return utils.Error(ctx, 400, "article title is required")
	}

	service := services.NewArticleService(ac.DB)
	article, err := service.UpdateArticle(id, services.ArticleInput{
		Title:   req.Title,
		Author:  req.Author,
		Content: req.Content,
		Status:  req.Status,
	}, currentUsername(ctx))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, article, "article updated")
}

// Delete soft delete artikel.
func (ac *ArticleController) Delete(ctx *fiber.Ctx) error {
	id, err := parseArticleID(ctx.Params("id"))
	if err != nil {
		return utils.Error(ctx, 400, "invalid article id")
	}
	service := services.NewArticleService(ac.DB)
	if err := service.DeleteArticle(id); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, nil, "article deleted")
}

// Restore pulihkan artikel yang di-soft-delete.
func (ac *ArticleController) Restore(ctx *fiber.Ctx) error {
	id, err := parseArticleID(ctx.Params("id"))
	if err != nil {
		return utils.Error(ctx, 400, "invalid article id")
	}
	service := services.NewArticleService(ac.DB)
	if err := service.RestoreArticle(id); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, nil, "article restored")
}

// Purge hard delete artikel, tidak bisa dibatalkan.
func (ac *ArticleController) Purge(ctx *fiber.Ctx) error {
	id, err := parseArticleID(ctx.Params("id"))
	if err != nil {
		return utils.Error(ctx, 400, "invalid article id")
	}
	service := services.NewArticleService(ac.DB)
	if err := service.PurgeArticle(id); err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, nil, "article purged")
}
