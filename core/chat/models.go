package chat

import (
	"time"

	"github.com/mwendwa/elimika/core"
)

// Post is one message on the chatbox feed.
type Post struct {
	ID         string    `json:"id"`
	AuthorID   int       `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	Comments   int       `json:"comments"` // denormalized count
	Likes      int       `json:"likes"`    // denormalized count
	Liked      bool      `json:"liked"`    // by the requesting user
	CreatedAt  time.Time `json:"created_at"` // UTC
	UpdatedAt  time.Time `json:"updated_at"` // UTC
}

// Comment is one reply under a Post.
type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"post_id"`
	AuthorID   int       `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"` // UTC
}

// NewPost contains information needed to publish a feed post.
type NewPost struct {
	Body string `json:"body" validate:"required,max=2000"`
}

func (np *NewPost) Validate() error {
	np.Body = core.CleanString(np.Body)
	return core.Validate.Struct(np)
}

// NewComment contains information needed to reply to a post.
type NewComment struct {
	Body string `json:"body" validate:"required,max=1000"`
}

func (nc *NewComment) Validate() error {
	nc.Body = core.CleanString(nc.Body)
	return core.Validate.Struct(nc)
}
