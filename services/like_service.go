package services

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-redis/redis"

	"blogapp/models"
	"blogapp/repository"
)

const likeRankKey = "rank:post:likes"

func postLikeKey(postID uint) string {
	return "post:" + strconv.FormatUint(uint64(postID), 10) + ":likes"
}

func commentLikeKey(commentID uint) string {
	return "comment:" + strconv.FormatUint(uint64(commentID), 10) + ":likes"
}

// TopPost is one row of the like-rank leaderboard.
type TopPost struct {
	ID    uint   `json:"id"`
	Title string `json:"title,omitempty"`
	Likes int64  `json:"likes"`
	Rank  int    `json:"rank"`
}

// LikeService toggles likes. The database is authoritative; when a redis
// client is present, counters and the post rank ZSET are mirrored there the
// same way on every toggle.
type LikeService struct {
	likes    repository.LikeRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	cache    *redis.Client
}

func NewLikeService(likes repository.LikeRepository, posts repository.PostRepository, comments repository.CommentRepository, cache *redis.Client) *LikeService {
	return &LikeService{likes: likes, posts: posts, comments: comments, cache: cache}
}

// TogglePost likes the post for the actor, or removes an existing like.
// Returns the new state and count.
func (s *LikeService) TogglePost(postID uint, actor *models.User) (bool, int64, error) {
	if _, err := s.posts.ByID(postID); err != nil {
		return false, 0, err
	}

	var liked bool
	existing, err := s.likes.ForPostByUser(postID, actor.ID)
	switch {
	case err == nil:
		if err := s.likes.Delete(existing); err != nil {
			return false, 0, err
		}
	case errors.Is(err, repository.ErrNotFound):
		like := &models.Like{UserID: actor.ID, PostID: &postID}
		if err := s.likes.Create(like); err != nil {
			return false, 0, err
		}
		liked = true
	default:
		return false, 0, err
	}

	count, err := s.likes.CountForPost(postID)
	if err != nil {
		return liked, 0, err
	}
	s.mirror(postLikeKey(postID), strconv.FormatUint(uint64(postID), 10), count, liked)
	return liked, count, nil
}

// ToggleComment is TogglePost for comment targets. Comments stay out of the
// rank ZSET.
func (s *LikeService) ToggleComment(commentID uint, actor *models.User) (bool, int64, error) {
	if _, err := s.comments.ByID(commentID); err != nil {
		return false, 0, err
	}

	var liked bool
	existing, err := s.likes.ForCommentByUser(commentID, actor.ID)
	switch {
	case err == nil:
		if err := s.likes.Delete(existing); err != nil {
			return false, 0, err
		}
	case errors.Is(err, repository.ErrNotFound):
		like := &models.Like{UserID: actor.ID, CommentID: &commentID}
		if err := s.likes.Create(like); err != nil {
			return false, 0, err
		}
		liked = true
	default:
		return false, 0, err
	}

	count, err := s.likes.CountForComment(commentID)
	if err != nil {
		return liked, 0, err
	}
	s.mirror(commentLikeKey(commentID), "", count, liked)
	return liked, count, nil
}

// PostLikedBy reports whether the user currently likes the post.
func (s *LikeService) PostLikedBy(postID, userID uint) (bool, error) {
	_, err := s.likes.ForPostByUser(postID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PostLikeCount reads the counter from redis first and falls back to the
// database, backfilling the cache on a miss.
func (s *LikeService) PostLikeCount(postID uint) (int64, error) {
	if s.cache != nil {
		if count, err := s.cache.Get(postLikeKey(postID)).Int64(); err == nil {
			return count, nil
		}
	}
	count, err := s.likes.CountForPost(postID)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		if err := s.cache.Set(postLikeKey(postID), count, 0).Err(); err != nil {
			log.Printf("like cache backfill failed: %v", err)
		}
	}
	return count, nil
}

// TopPosts reads the rank ZSET and decorates rows with titles where the
// post still exists. Without redis the leaderboard is empty.
func (s *LikeService) TopPosts(top int) ([]TopPost, error) {
	if top <= 0 {
		top = 10
	}
	if s.cache == nil {
		return []TopPost{}, nil
	}
	zres, err := s.cache.ZRevRangeWithScores(likeRankKey, 0, int64(top-1)).Result()
	if err != nil {
		if err == redis.Nil {
			return []TopPost{}, nil
		}
		return nil, err
	}

	list := make([]TopPost, 0, len(zres))
	for idx, z := range zres {
		member, _ := z.Member.(string)
		id, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			continue
		}
		row := TopPost{ID: uint(id), Likes: int64(z.Score), Rank: idx + 1}
		if post, err := s.posts.ByID(uint(id)); err == nil {
			row.Title = post.Title
		}
		list = append(list, row)
	}
	return list, nil
}

// mirror pushes the fresh count into redis and bumps the rank ZSET in one
// pipeline. Cache failure never fails the toggle.
func (s *LikeService) mirror(likeKey, rankMember string, count int64, liked bool) {
	if s.cache == nil {
		return
	}
	delta := float64(-1)
	if liked {
		delta = 1
	}
	pipe := s.cache.TxPipeline()
	pipe.Set(likeKey, count, 0)
	if rankMember != "" {
		pipe.ZIncrBy(likeRankKey, delta, rankMember)
	}
	if _, err := pipe.Exec(); err != nil {
		log.Printf("like cache update failed: %v", err)
	}
}
