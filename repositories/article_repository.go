package repositories

import (
	"fiber-admin/models"
	"fiber-admin/types"

	"gorm.io/gorm"
)

type ArticleRepository struct {
	DB *gorm.DB
}

func NewArticleRepository(DB *gorm.DB) *ArticleRepository {
	return &ArticleRepository{DB: DB}
}

// Create article
func (r *ArticleRepository) Create(article *models.Article) error {
	return r.DB.Create(article).Error
}

// Get article by ID
func (r *ArticleRepository) GetByID(id types.SnowflakeID) (*models.Article, error) {
	var article models.Article
	err := r.DB.First(&article, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Get all articles (belum dihapus)
func (r *ArticleRepository) GetAll() ([]models.Article, error) {
	var articles []models.Article
	err := r.DB.Order("created_at desc").Find(&articles).Error
	return articles, err
}

// Update article
func (r *ArticleRepository) Update(article *models.Article) error {
	return r.DB.Save(article).Error
}

// Soft delete article
func (r *ArticleRepository) Delete(id types.SnowflakeID) error {
	return r.DB.Delete(&models.Article{}, "id = ?", id).Error
}

// Restore pulihkan article yang di-soft-delete.
func (r *ArticleRepository) Restore(id types.SnowflakeID) error {
	return r.DB.Unscoped().Model(&models.Article{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

// Hard delete article, tidak bisa dibatalkan
func (r *ArticleRepository) HardDelete(id types.SnowflakeID) error {
	return r.DB.Unscoped().Delete(&models.Article{}, "id = ?", id).Error
}
