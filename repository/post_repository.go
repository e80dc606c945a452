package repository

import (
	"blogapp/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *models.Post) error
	// ByID loads the post with its author.
	ByID(id uint) (*models.Post, error)
	// Page returns one feed page, newest first, plus the total post count.
	Page(page, perPage int) ([]models.Post, int64, error)
	PageByAuthor(userID uint, page, perPage int) ([]models.Post, int64, error)
	Update(post *models.Post) error
	// Delete removes the post and its dependent comments and likes in one
	// transaction.
	Delete(id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) ByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").First(&post, id).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (r *postRepository) Page(page, perPage int) ([]models.Post, int64, error) {
	all := func(db *gorm.DB) *gorm.DB { return db }
	return r.page(all, page, perPage)
}

func (r *postRepository) PageByAuthor(userID uint, page, perPage int) ([]models.Post, int64, error) {
	byAuthor := func(db *gorm.DB) *gorm.DB { return db.Where("user_id = ?", userID) }
	return r.page(byAuthor, page, perPage)
}

func (r *postRepository) page(cond func(*gorm.DB) *gorm.DB, page, perPage int) ([]models.Post, int64, error) {
	if page < 1 {
		page = 1
	}
	var total int64
	if err := cond(r.db.Model(&models.Post{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var posts []models.Post
	err := cond(r.db.Preload("Author")).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *postRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var commentIDs []uint
		if err := tx.Model(&models.Comment{}).Where("post_id = ?", id).
			Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).
				Delete(&models.Like{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}
