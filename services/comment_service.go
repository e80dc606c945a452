package services

import (
	"blogapp/models"
	"blogapp/repository"
)

type CommentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// Create adds a comment to an existing post. Any authenticated user may
// comment on any post.
func (s *CommentService) Create(postID uint, actor *models.User, body string) (*models.Comment, error) {
	if _, err := s.posts.ByID(postID); err != nil {
		return nil, err
	}
	comment := &models.Comment{
		Body:   body,
		UserID: actor.ID,
		PostID: postID,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	comment.Author = *actor
	return comment, nil
}

func (s *CommentService) ForPost(postID uint) ([]models.Comment, error) {
	return s.comments.ForPost(postID)
}

// Delete removes a comment. Only the comment's own author may delete it;
// there is no admin override here, unlike posts.
func (s *CommentService) Delete(id uint, actor *models.User) error {
	comment, err := s.comments.ByID(id)
	if err != nil {
		return err
	}
	if comment.UserID != actor.ID {
		return ErrForbidden
	}
	return s.comments.Delete(id)
}
