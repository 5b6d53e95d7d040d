package persistent

import (
	"movielist/internal/entity"
	"movielist/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Link480p:    m.Link480p,
		Link720p:    m.Link720p,
		Link1080p:   m.Link1080p,
		ViewCount:   m.ViewCount,
		CreatedAt:   m.CreatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		Link480p:    e.Link480p,
		Link720p:    e.Link720p,
		Link1080p:   e.Link1080p,
		ViewCount:   e.ViewCount,
		CreatedAt:   e.CreatedAt,
	}
}

func ToPostSummary(m *model.PostModel) *entity.PostSummary {
	if m == nil {
		return nil
	}

	return &entity.PostSummary{
		ID:        m.ID,
		Title:     m.Title,
		ImageURL:  m.ImageURL,
		Link480p:  m.Link480p,
		Link720p:  m.Link720p,
		Link1080p: m.Link1080p,
		ViewCount: m.ViewCount,
		CreatedAt: m.CreatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		Username:  m.Username,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		PostID:    e.PostID,
		Username:  e.Username,
		Comment:   e.Comment,
		CreatedAt: e.CreatedAt,
	}
}

func ToAdminUserEntity(m *model.AdminUserModel) *entity.AdminUser {
	if m == nil {
		return nil
	}

	return &entity.AdminUser{
		ID:        m.ID,
		Username:  m.Username,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
	}
}
