package repository

import (
	"dsa_roadmap_backend/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	DB *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

// List returns common projects plus the ones specific to lang.
func (r *ProjectRepository) List(lang model.Language, level model.Level, search string) ([]model.Project, error) {
	var rows []model.Project
	query := r.DB.Model(&model.Project{}).Where("language = ? OR language = ?", "", lang)
	if level != "" {
		query = query.Where("level = ?", level)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	err := query.Order("level asc, title asc").Find(&rows).Error
	return rows, err
}

func (r *ProjectRepository) FindBySlug(slug string) (*model.Project, error) {
	var row model.Project
	err := r.DB.First(&row, "slug = ?", slug).Error
	return &row, err
}
