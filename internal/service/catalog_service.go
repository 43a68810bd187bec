package service

import (
	"context"
	"errors"

	"dsa_roadmap_backend/internal/model"
	"dsa_roadmap_backend/internal/repository"
	"dsa_roadmap_backend/internal/util"

	"gorm.io/gorm"
)

// CatalogService joins the seeded catalog tables with the per-user state kept
// in the key-value store: bookmark/completed slug lists, the project progress
// map and per-algorithm notes.
type CatalogService struct {
	Store      repository.KeyValueStore
	Resources  *repository.ResourceRepository
	Blogs      *repository.BlogRepository
	Books      *repository.BookRepository
	Projects   *repository.ProjectRepository
	Algorithms *repository.AlgorithmRepository
}

func NewCatalogService(
	store repository.KeyValueStore,
	resources *repository.ResourceRepository,
	blogs *repository.BlogRepository,
	books *repository.BookRepository,
	projects *repository.ProjectRepository,
	algorithms *repository.AlgorithmRepository,
) *CatalogService {
	return &CatalogService{
		Store:      store,
		Resources:  resources,
		Blogs:      blogs,
		Books:      books,
		Projects:   projects,
		Algorithms: algorithms,
	}
}

// ResourceView decorates a catalog resource with the user's flags.
type ResourceView struct {
	model.CatalogResource
	Bookmarked bool `json:"bookmarked"`
	Completed  bool `json:"completed"`
}

type BlogView struct {
	model.Blog
	Bookmarked bool `json:"bookmarked"`
}

type BookView struct {
	model.Book
	Bookmarked bool `json:"bookmarked"`
}

type ProjectView struct {
	model.Project
	Status model.ProjectStatus `json:"status"`
	Notes  string              `json:"notes"`
}

type AlgorithmView struct {
	model.Algorithm
	Notes string `json:"notes"`
}

func (s *CatalogService) ListResources(ctx context.Context, lang model.Language, typ, search string) ([]ResourceView, error) {
	rows, err := s.Resources.List(lang, typ, search)
	if err != nil {
		return nil, err
	}
	bookmarks, err := s.slugSet(ctx, util.KeyBookmarkedResources)
	if err != nil {
		return nil, err
	}
	completed, err := s.slugSet(ctx, util.KeyCompletedResources)
	if err != nil {
		return nil, err
	}

	views := make([]ResourceView, len(rows))
	for i, row := range rows {
		views[i] = ResourceView{
			CatalogResource: row,
			Bookmarked:      bookmarks[row.Slug],
			Completed:       completed[row.Slug],
		}
	}
	return views, nil
}

func (s *CatalogService) ListBlogs(ctx context.Context, category, search string) ([]BlogView, error) {
	rows, err := s.Blogs.List(category, search)
	if err != nil {
		return nil, err
	}
	bookmarks, err := s.slugSet(ctx, util.KeyBookmarkedBlogs)
	if err != nil {
		return nil, err
	}

	views := make([]BlogView, len(rows))
	for i, row := range rows {
		views[i] = BlogView{Blog: row, Bookmarked: bookmarks[row.Slug]}
	}
	return views, nil
}

func (s *CatalogService) ListBooks(ctx context.Context, category, search string) ([]BookView, error) {
	rows, err := s.Books.List(category, search)
	if err != nil {
		return nil, err
	}
	bookmarks, err := s.slugSet(ctx, util.KeyBookmarkedBooks)
	if err != nil {
		return nil, err
	}

	views := make([]BookView, len(rows))
	for i, row := range rows {
		views[i] = BookView{Book: row, Bookmarked: bookmarks[row.Slug]}
	}
	return views, nil
}

func (s *CatalogService) ListProjects(ctx context.Context, lang model.Language, level model.Level, search string) ([]ProjectView, error) {
	rows, err := s.Projects.List(lang, level, search)
	if err != nil {
		return nil, err
	}
	progress, err := s.projectProgress(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ProjectView, len(rows))
	for i, row := range rows {
		entry, ok := progress[row.Slug]
		if !ok {
			entry = model.ProjectProgress{Status: model.ProjectNotStarted}
		}
		views[i] = ProjectView{Project: row, Status: entry.Status, Notes: entry.Notes}
	}
	return views, nil
}

func (s *CatalogService) ListAlgorithms(ctx context.Context, category, search string) ([]AlgorithmView, error) {
	rows, err := s.Algorithms.List(category, search)
	if err != nil {
		return nil, err
	}
	notes, err := s.algorithmNotes(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]AlgorithmView, len(rows))
	for i, row := range rows {
		views[i] = AlgorithmView{Algorithm: row, Notes: notes[row.Slug]}
	}
	return views, nil
}

// ToggleResourceBookmark flips the bookmark flag and reports the new state.
func (s *CatalogService) ToggleResourceBookmark(ctx context.Context, slug string) (bool, error) {
	if _, err := s.Resources.FindBySlug(slug); err != nil {
		return false, mapNotFound(err)
	}
	return s.toggleSlug(ctx, util.KeyBookmarkedResources, slug)
}

// ToggleResourceCompleted flips the completed flag and reports the new state.
func (s *CatalogService) ToggleResourceCompleted(ctx context.Context, slug string) (bool, error) {
	if _, err := s.Resources.FindBySlug(slug); err != nil {
		return false, mapNotFound(err)
	}
	return s.toggleSlug(ctx, util.KeyCompletedResources, slug)
}

func (s *CatalogService) ToggleBlogBookmark(ctx context.Context, slug string) (bool, error) {
	if _, err := s.Blogs.FindBySlug(slug); err != nil {
		return false, mapNotFound(err)
	}
	return s.toggleSlug(ctx, util.KeyBookmarkedBlogs, slug)
}

func (s *CatalogService) ToggleBookBookmark(ctx context.Context, slug string) (bool, error) {
	if _, err := s.Books.FindBySlug(slug); err != nil {
		return false, mapNotFound(err)
	}
	return s.toggleSlug(ctx, util.KeyBookmarkedBooks, slug)
}

// SetProjectProgress upserts the {status, notes} entry for one project.
func (s *CatalogService) SetProjectProgress(ctx context.Context, slug string, entry model.ProjectProgress) error {
	if !entry.Status.Valid() {
		return util.ErrInvalidStatus
	}
	if _, err := s.Projects.FindBySlug(slug); err != nil {
		return mapNotFound(err)
	}

	progress, err := s.projectProgress(ctx)
	if err != nil {
		return err
	}
	progress[slug] = entry
	return s.Store.Save(ctx, util.KeyProjectProgress, progress)
}

// SetAlgorithmNotes stores free-form notes for one algorithm. Empty notes
// remove the entry.
func (s *CatalogService) SetAlgorithmNotes(ctx context.Context, slug, notes string) error {
	if _, err := s.Algorithms.FindBySlug(slug); err != nil {
		return mapNotFound(err)
	}

	stored, err := s.algorithmNotes(ctx)
	if err != nil {
		return err
	}
	if notes == "" {
		delete(stored, slug)
	} else {
		stored[slug] = notes
	}
	return s.Store.Save(ctx, util.KeyAlgorithmNotes, stored)
}

func (s *CatalogService) slugSet(ctx context.Context, key string) (map[string]bool, error) {
	var slugs []string
	if _, err := s.Store.Load(ctx, key, &slugs); err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		set[slug] = true
	}
	return set, nil
}

// toggleSlug adds or removes the slug from the stored list, preserving the
// original array encoding.
func (s *CatalogService) toggleSlug(ctx context.Context, key, slug string) (bool, error) {
	var slugs []string
	if _, err := s.Store.Load(ctx, key, &slugs); err != nil {
		return false, err
	}

	present := false
	filtered := slugs[:0]
	for _, v := range slugs {
		if v == slug {
			present = true
			continue
		}
		filtered = append(filtered, v)
	}
	if !present {
		filtered = append(filtered, slug)
	}

	if err := s.Store.Save(ctx, key, filtered); err != nil {
		return false, err
	}
	return !present, nil
}

func (s *CatalogService) projectProgress(ctx context.Context) (map[string]model.ProjectProgress, error) {
	progress := make(map[string]model.ProjectProgress)
	if _, err := s.Store.Load(ctx, util.KeyProjectProgress, &progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *CatalogService) algorithmNotes(ctx context.Context) (map[string]string, error) {
	notes := make(map[string]string)
	if _, err := s.Store.Load(ctx, util.KeyAlgorithmNotes, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrNotFound
	}
	return err
}
