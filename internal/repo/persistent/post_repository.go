package persistent

import (
	"errors"

	"movielist/internal/entity"
	"movielist/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	List() ([]*entity.PostSummary, error)
	GetByID(id int64) (*entity.Post, error)
	Create(post *entity.Post) error
	Update(id int64, fields entity.PostFields) error
	Delete(id int64) error
	IncrementViews(id int64) (int64, error)
	Stats() (*entity.Stats, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) List() ([]*entity.PostSummary, error) {
	var postModels []model.PostModel
	if err := r.db.
		Select("id", "title", "image_url", "link_480p", "link_720p", "link_1080p", "view_count", "created_at").
		Order("created_at DESC").
		Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.PostSummary, len(postModels))
	for i := range postModels {
		posts[i] = ToPostSummary(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) GetByID(id int64) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

// Update replaces the editable columns only; created_at and view_count are
// never part of the statement.
func (r *postRepository) Update(id int64, fields entity.PostFields) error {
	res := r.db.Model(&model.PostModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       fields.Title,
		"description": fields.Description,
		"image_url":   fields.ImageURL,
		"link_480p":   fields.Link480p,
		"link_720p":   fields.Link720p,
		"link_1080p":  fields.Link1080p,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// Delete removes the post and its comments in one transaction. The schema
// also declares ON DELETE CASCADE, so the explicit comment delete is the
// documented contract rather than the only line of defense.
func (r *postRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&model.PostModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrNotFound
		}
		return nil
	})
}

// IncrementViews bumps the counter in a single atomic statement; concurrent
// callers cannot lose updates.
func (r *postRepository) IncrementViews(id int64) (int64, error) {
	res := r.db.Model(&model.PostModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", clause.Expr{SQL: "view_count + ?", Vars: []interface{}{1}})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, entity.ErrNotFound
	}

	var count int64
	if err := r.db.Model(&model.PostModel{}).
		Where("id = ?", id).
		Pluck("view_count", &count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postRepository) Stats() (*entity.Stats, error) {
	stats := &entity.Stats{}

	if err := r.db.Model(&model.PostModel{}).Count(&stats.PostCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.CommentModel{}).Count(&stats.CommentCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.PostModel{}).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&stats.TotalViews).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
