package repository

import (
	"dsa_roadmap_backend/internal/model"

	"gorm.io/gorm"
)

type BlogRepository struct {
	DB *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{DB: db}
}

func (r *BlogRepository) List(category, search string) ([]model.Blog, error) {
	var rows []model.Blog
	query := r.DB.Model(&model.Blog{})
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ? OR author LIKE ?", like, like, like)
	}
	err := query.Order("date desc").Find(&rows).Error
	return rows, err
}

func (r *BlogRepository) FindBySlug(slug string) (*model.Blog, error) {
	var row model.Blog
	err := r.DB.First(&row, "slug = ?", slug).Error
	return &row, err
}
