package repository

import (
	"dsa_roadmap_backend/internal/model"

	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

// List returns common resources plus the ones specific to lang.
func (r *ResourceRepository) List(lang model.Language, typ, search string) ([]model.CatalogResource, error) {
	var rows []model.CatalogResource
	query := r.DB.Model(&model.CatalogResource{}).Where("language = ? OR language = ?", "", lang)
	if typ != "" && typ != "all" {
		query = query.Where("type = ?", typ)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	err := query.Order("title asc").Find(&rows).Error
	return rows, err
}

func (r *ResourceRepository) FindBySlug(slug string) (*model.CatalogResource, error) {
	var row model.CatalogResource
	err := r.DB.First(&row, "slug = ?", slug).Error
	return &row, err
}
