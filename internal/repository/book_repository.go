package repository

import (
	"dsa_roadmap_backend/internal/model"

	"gorm.io/gorm"
)

type BookRepository struct {
	DB *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{DB: db}
}

func (r *BookRepository) List(category, search string) ([]model.Book, error) {
	var rows []model.Book
	query := r.DB.Model(&model.Book{})
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ? OR author LIKE ?", like, like, like)
	}
	err := query.Order("title asc").Find(&rows).Error
	return rows, err
}

func (r *BookRepository) FindBySlug(slug string) (*model.Book, error) {
	var row model.Book
	err := r.DB.First(&row, "slug = ?", slug).Error
	return &row, err
}
