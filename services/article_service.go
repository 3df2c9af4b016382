package services

import (
	"errors"

	"fiber-admin/controllers/idgen"
	"fiber-admin/models"
	"fiber-admin/repositories"
	"fiber-admin/types"

	"gorm.io/gorm"
)

type ArticleService struct {
	DB *gorm.DB
}

func NewArticleService(DB *gorm.DB) *ArticleService {
	return &ArticleService{DB: DB}
}

type ArticleInput struct {
	Title   string
	Author  string
	Content string
	Status  int
}

// PageArticles daftar artikel hidup, filter judul dan status.
func (s *ArticleService) PageArticles(page, pageSize int, title string, status *int) ([]models.Article, int64, error) {
	query := s.DB.Model(&models.Article{})
	if title != "" {
		query = query.Where("title LIKE ?", "%"+title+"%")
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	if err := query.Order("created_at desc").Offset((page - 1) * pageSize).Limit(pageSize).Find(&articles).Error; err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// ListArticles seluruh artikel hidup.
func (s *ArticleService) ListArticles() ([]models.Article, error) {
	return repositories.NewArticleRepository(s.DB).GetAll()
}

// ArticleDetail satu artikel hidup.
func (s *ArticleService) ArticleDetail(id types.SnowflakeID) (*models.Article, error) {
	article, err := repositories.NewArticleRepository(s.DB).GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrArticleNotFound
	}
	return article, err
}

// CreateArticle buat artikel dengan id snowflake.
func (s *ArticleService) CreateArticle(input ArticleInput, creator string) (*models.Article, error) {
	article := &models.Article{
		ID:      types.SnowflakeID(idgen.GenerateID()),
		Title:   input.Title,
		Author:  input.Author,
		Content: input.Content,
		Status:  input.Status,
		Creator: creator,
		Updater: creator,
	}
	if err := repositories.NewArticleRepository(s.DB).Create(article); err != nil {
		return nil, err
	}
	return article, nil
}

// UpdateArticle ubah artikel.
func (s *ArticleService) UpdateArticle(id types.SnowflakeID, input ArticleInput, updater string) (*models.Article, error) {
	articleRepo := repositories.NewArticleRepository(s.DB)
	article, err := articleRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, err
	}

	article.Title = input.Title
	article.Author = input.Author
	article.Content = input.Content
	article.Status = input.Status
	article.Updater = updater
	if err := articleRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

// DeleteArticle soft delete artikel.
func (s *ArticleService) DeleteArticle(id types.SnowflakeID) error {
	articleRepo := repositories.NewArticleRepository(s.DB)
	if _, err := articleRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	return articleRepo.Delete(id)
}

// RestoreArticle pulihkan artikel yang di-soft-delete.
func (s *ArticleService) RestoreArticle(id types.SnowflakeID) error {
	return repositories.NewArticleRepository(s.DB).Restore(id)
}

// PurgeArticle hard delete artikel, tidak bisa dibatalkan.
func (s *ArticleService) PurgeArticle(id types.SnowflakeID) error {
	return repositories.NewArticleRepository(s.DB).HardDelete(id)
}
