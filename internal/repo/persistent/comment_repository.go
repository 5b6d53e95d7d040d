package persistent

import (
	"errors"

	"movielist/internal/entity"
	"movielist/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error class 23503: foreign_key_violation.
const pgForeignKeyViolation = "23503"

type CommentRepository interface {
	ListForPost(postID int64) ([]*entity.Comment, error)
	ListRecent(limit int) ([]*entity.CommentWithPostTitle, error)
	Create(comment *entity.Comment) error
	Delete(id int64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) ListForPost(postID int64) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	if err := r.db.
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *commentRepository) ListRecent(limit int) ([]*entity.CommentWithPostTitle, error) {
	var rows []entity.CommentWithPostTitle
	if err := r.db.Model(&model.CommentModel{}).
		Select("comments.id, comments.post_id, comments.username, comments.comment, comments.created_at, posts.title AS post_title").
		Joins("INNER JOIN posts ON comments.post_id = posts.id").
		Order("comments.created_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	comments := make([]*entity.CommentWithPostTitle, len(rows))
	for i := range rows {
		comments[i] = &rows[i]
	}
	return comments, nil
}

// Create inserts the comment and maps a foreign key violation to
// entity.ErrPostNotFound so callers can answer "invalid post" instead of a
// generic server error.
func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.Create(commentModel).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return entity.ErrPostNotFound
		}
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) Delete(id int64) error {
	res := r.db.Where("id = ?", id).Delete(&model.CommentModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
