package services

import (
	"blogapp/models"
	"blogapp/repository"
)

// PostsPerPage is the feed page size.
const PostsPerPage = 5

type PostService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// Create persists a new post for its owner; the database assigns the
// creation timestamp.
func (s *PostService) Create(owner *models.User, title, content string) (*models.Post, error) {
	post := &models.Post{
		Title:   title,
		Content: content,
		UserID:  owner.ID,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	post.Author = *owner
	return post, nil
}

func (s *PostService) Get(id uint) (*models.Post, error) {
	return s.posts.ByID(id)
}

func (s *PostService) Feed(page int) ([]models.Post, int64, error) {
	return s.posts.Page(page, PostsPerPage)
}

func (s *PostService) ByAuthor(userID uint, page int) ([]models.Post, int64, error) {
	return s.posts.PageByAuthor(userID, page, PostsPerPage)
}

// Update edits title/content. The actor must own the post or hold the
// admin flag.
func (s *PostService) Update(id uint, actor *models.User, title, content string) (*models.Post, error) {
	post, err := s.posts.ByID(id)
	if err != nil {
		return nil, err
	}
	if post.UserID != actor.ID && !actor.Admin() {
		return nil, ErrForbidden
	}
	post.Title = title
	post.Content = content
	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the post and everything hanging off it. Same owner-or-admin
// rule as Update.
func (s *PostService) Delete(id uint, actor *models.User) error {
	post, err := s.posts.ByID(id)
	if err != nil {
		return err
	}
	if post.UserID != actor.ID && !actor.Admin() {
		return ErrForbidden
	}
	return s.posts.Delete(id)
}
