package chat

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/mwendwa/elimika/core/user"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
)

type (
	Repository interface {
		CreatePost(post Post) (Post, error)
		// QueryPosts returns posts newest-first with comment/like counts;
		// Post.Liked reflects forUserID.
		QueryPosts(forUserID int) ([]Post, error)
		GetPostByID(id string, forUserID int) (Post, error)
		DeletePost(id string) error

		CreateComment(comment Comment) (Comment, error)
		QueryCommentsByPost(postID string) ([]Comment, error)
		GetCommentByID(id string) (Comment, error)
		DeleteComment(id string) error

		// ToggleLike flips forUserID's like on a post and reports the new state
		// and like count.
		ToggleLike(postID string, forUserID int) (liked bool, likes int, err error)
	}

	Service interface {
		Publish(author user.User, np NewPost) (Post, error)
		Feed(forUser user.User) ([]Post, error)
		GetPost(id string, forUser user.User) (Post, error)
		DeletePost(id string) error
		Reply(postID string, author user.User, nc NewComment) (Comment, error)
		Comments(postID string) ([]Comment, error)
		GetComment(id string) (Comment, error)
		DeleteComment(id string) error
		ToggleLike(postID string, forUser user.User) (liked bool, likes int, err error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Publish(author user.User, np NewPost) (Post, error) {
	now := time.Now().UTC()
	return svc.repo.CreatePost(Post{
		ID:         uuid.New().String(),
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Body:       np.Body,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func (svc *service) Feed(forUser user.User) ([]Post, error) {
	return svc.repo.QueryPosts(forUser.ID)
}

func (svc *service) GetPost(id string, forUser user.User) (Post, error) {
	return svc.repo.GetPostByID(id, forUser.ID)
}

func (svc *service) DeletePost(id string) error {
	return svc.repo.DeletePost(id)
}

func (svc *service) Reply(postID string, author user.User, nc NewComment) (Comment, error) {
	// reject replies to vanished posts up-front
	if _, err := svc.repo.GetPostByID(postID, author.ID); err != nil {
		return Comment{}, err
	}
	return svc.repo.CreateComment(Comment{
		ID:         uuid.New().String(),
		PostID:     postID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Body:       nc.Body,
		CreatedAt:  time.Now().UTC(),
	})
}

func (svc *service) Comments(postID string) ([]Comment, error) {
	return svc.repo.QueryCommentsByPost(postID)
}

func (svc *service) GetComment(id string) (Comment, error) {
	return svc.repo.GetCommentByID(id)
}

func (svc *service) DeleteComment(id string) error {
	return svc.repo.DeleteComment(id)
}

func (svc *service) ToggleLike(postID string, forUser user.User) (bool, int, error) {
	return svc.repo.ToggleLike(postID, forUser.ID)
}
