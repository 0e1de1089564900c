package sqlxrepos

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/mwendwa/elimika/core/chat"
)

type ChatRepository struct {
	db *sqlx.DB
}

var _ chat.Repository = (*ChatRepository)(nil)

func NewChatRepository(db *sqlx.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// postQuery hydrates the denormalized counters and the per-viewer liked flag
// in one round-trip.
const postQuery = `
SELECT p.id, p.author_id, u.name AS author_name, p.body, p.created_at, p.updated_at,
       (SELECT count(*) FROM comment c WHERE c.post_id = p.id) AS comments,
       (SELECT count(*) FROM post_like l WHERE l.post_id = p.id) AS likes,
       EXISTS (SELECT 1 FROM post_like l WHERE l.post_id = p.id AND l.user_id = $1) AS liked
FROM post p
JOIN "user" u ON u.id = p.author_id`

type postRow struct {
	ID         string    `db:"id"`
	AuthorID   int       `db:"author_id"`
	AuthorName string    `db:"author_name"`
	Body       string    `db:"body"`
	Comments   int       `db:"comments"`
	Likes      int       `db:"likes"`
	Liked      bool      `db:"liked"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (row postRow) toPost() chat.Post {
	return chat.Post{
		ID:         row.ID,
		AuthorID:   row.AuthorID,
		AuthorName: row.AuthorName,
		Body:       row.Body,
		Comments:   row.Comments,
		Likes:      row.Likes,
		Liked:      row.Liked,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func (repo *ChatRepository) CreatePost(post chat.Post) (chat.Post, error) {
	q := `INSERT INTO post (id, author_id, body, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := repo.db.Exec(q, post.ID, post.AuthorID, post.Body, post.CreatedAt, post.UpdatedAt); err != nil {
		return chat.Post{}, errors.Wrap(err, "inserting post")
	}
	return post, nil
}

func (repo *ChatRepository) QueryPosts(forUserID int) ([]chat.Post, error) {
	var rows []postRow
	if err := repo.db.Select(&rows, postQuery+" ORDER BY p.created_at DESC", forUserID); err != nil {
		return nil, errors.Wrap(err, "querying posts")
	}
	posts := make([]chat.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toPost())
	}
	return posts, nil
}

func (repo *ChatRepository) GetPostByID(id string, forUserID int) (chat.Post, error) {
	var row postRow
	if err := repo.db.Get(&row, postQuery+" WHERE p.id = $2", forUserID, id); err != nil {
		if err == sql.ErrNoRows {
			return chat.Post{}, chat.ErrPostNotFound
		}
		return chat.Post{}, errors.Wrap(err, "getting post")
	}
	return row.toPost(), nil
}

func (repo *ChatRepository) DeletePost(id string) error {
	res, err := repo.db.Exec(`DELETE FROM post WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting post")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return chat.ErrPostNotFound
	}
	return nil
}

func (repo *ChatRepository) CreateComment(comment chat.Comment) (chat.Comment, error) {
	q := `INSERT INTO comment (id, post_id, author_id, body, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := repo.db.Exec(q, comment.ID, comment.PostID, comment.AuthorID, comment.Body, comment.CreatedAt); err != nil {
		return chat.Comment{}, errors.Wrap(err, "inserting comment")
	}
	return comment, nil
}

func (repo *ChatRepository) QueryCommentsByPost(postID string) ([]chat.Comment, error) {
	var comments []chat.Comment
	q := `SELECT c.id, c.post_id, c.author_id, u.name AS author_name, c.body, c.created_at
FROM comment c
JOIN "user" u ON u.id = c.author_id
WHERE c.post_id = $1
ORDER BY c.created_at`
	rows, err := repo.db.Queryx(q, postID)
	if err != nil {
		return nil, errors.Wrap(err, "querying comments")
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			cmt        chat.Comment
			authorName string
		)
		if err = rows.Scan(&cmt.ID, &cmt.PostID, &cmt.AuthorID, &authorName, &cmt.Body, &cmt.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scanning comment")
		}
		cmt.AuthorName = authorName
		comments = append(comments, cmt)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "querying comments")
	}
	return comments, nil
}

func (repo *ChatRepository) GetCommentByID(id string) (chat.Comment, error) {
	var cmt chat.Comment
	q := `SELECT c.id, c.post_id, c.author_id, u.name AS author_name, c.body, c.created_at
FROM comment c
JOIN "user" u ON u.id = c.author_id
WHERE c.id = $1`
	row := repo.db.QueryRow(q, id)
	if err := row.Scan(&cmt.ID, &cmt.PostID, &cmt.AuthorID, &cmt.AuthorName, &cmt.Body, &cmt.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return chat.Comment{}, chat.ErrCommentNotFound
		}
		return chat.Comment{}, errors.Wrap(err, "getting comment")
	}
	return cmt, nil
}

func (repo *ChatRepository) DeleteComment(id string) error {
	res, err := repo.db.Exec(`DELETE FROM comment WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting comment")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return chat.ErrCommentNotFound
	}
	return nil
}

func (repo *ChatRepository) ToggleLike(postID string, forUserID int) (bool, int, error) {
	var exists bool
	q := `SELECT EXISTS (SELECT 1 FROM post WHERE id = $1)`
	if err := repo.db.Get(&exists, q, postID); err != nil {
		return false, 0, errors.Wrap(err, "checking post")
	}
	if !exists {
		return false, 0, chat.ErrPostNotFound
	}

	res, err := repo.db.Exec(`DELETE FROM post_like WHERE post_id = $1 AND user_id = $2`, postID, forUserID)
	if err != nil {
		return false, 0, errors.Wrap(err, "unliking post")
	}
	var liked bool
	if n, _ := res.RowsAffected(); n == 0 {
		// was not liked; like it
		if _, err = repo.db.Exec(`INSERT INTO post_like (post_id, user_id) VALUES ($1, $2)`, postID, forUserID); err != nil {
			return false, 0, errors.Wrap(err, "liking post")
		}
		liked = true
	}

	var likes int
	if err = repo.db.Get(&likes, `SELECT count(*) FROM post_like WHERE post_id = $1`, postID); err != nil {
		return false, 0, errors.Wrap(err, "counting likes")
	}
	return liked, likes, nil
}
