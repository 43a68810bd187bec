package repository

import (
	"dsa_roadmap_backend/internal/model"

	"gorm.io/gorm"
)

type AlgorithmRepository struct {
	DB *gorm.DB
}

func NewAlgorithmRepository(db *gorm.DB) *AlgorithmRepository {
	return &AlgorithmRepository{DB: db}
}

func (r *AlgorithmRepository) List(category, search string) ([]model.Algorithm, error) {
	var rows []model.Algorithm
	query := r.DB.Model(&model.Algorithm{})
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	err := query.Order("category asc, name asc").Find(&rows).Error
	return rows, err
}

func (r *AlgorithmRepository) FindBySlug(slug string) (*model.Algorithm, error) {
	var row model.Algorithm
	err := r.DB.First(&row, "slug = ?", slug).Error
	return &row, err
}
