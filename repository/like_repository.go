package repository

import (
	"blogapp/models"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Create(like *models.Like) error
	Delete(like *models.Like) error
	ForPostByUser(postID, userID uint) (*models.Like, error)
	ForCommentByUser(commentID, userID uint) (*models.Like, error)
	CountForPost(postID uint) (int64, error)
	CountForComment(commentID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(like *models.Like) error {
	return r.db.Create(like).Error
}

func (r *likeRepository) Delete(like *models.Like) error {
	return r.db.Delete(like).Error
}

func (r *likeRepository) ForPostByUser(postID, userID uint) (*models.Like, error) {
	var like models.Like
	err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).
		First(&like).Error
	if err != nil {
		return nil, translate(err)
	}
	return &like, nil
}

func (r *likeRepository) ForCommentByUser(commentID, userID uint) (*models.Like, error) {
	var like models.Like
	err := r.db.Where("comment_id = ? AND user_id = ?", commentID, userID).
		First(&like).Error
	if err != nil {
		return nil, translate(err)
	}
	return &like, nil
}

func (r *likeRepository) CountForPost(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (r *likeRepository) CountForComment(commentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}
