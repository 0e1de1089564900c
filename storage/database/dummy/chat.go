package dummydb

import (
	"sort"

	"github.com/mwendwa/elimika/core/chat"
)

type chatRepository struct {
	db *chatTables
}

var _ chat.Repository = (*chatRepository)(nil) // interface compliance check

func NewChatRepository(db *DB) chat.Repository {
	return &chatRepository{db: db.chat}
}

func (repo *chatRepository) hydrate(post chat.Post, forUserID int) chat.Post {
	for _, cmt := range repo.db.comments {
		if cmt.PostID == post.ID {
			post.Comments++
		}
	}
	post.Likes = len(repo.db.likes[post.ID])
	post.Liked = repo.db.likes[post.ID][forUserID]
	return post
}

func (repo *chatRepository) CreatePost(post chat.Post) (chat.Post, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.posts[post.ID] = &post
	return post, nil
}

func (repo *chatRepository) QueryPosts(forUserID int) ([]chat.Post, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	posts := make([]chat.Post, 0, len(repo.db.posts))
	for _, post := range repo.db.posts {
		posts = append(posts, repo.hydrate(*post, forUserID))
	}
	// newest first
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (repo *chatRepository) GetPostByID(id string, forUserID int) (chat.Post, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if post, ok := repo.db.posts[id]; ok {
		return repo.hydrate(*post, forUserID), nil
	}
	return chat.Post{}, chat.ErrPostNotFound
}

func (repo *chatRepository) DeletePost(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.posts[id]; !ok {
		return chat.ErrPostNotFound
	}
	delete(repo.db.posts, id)
	delete(repo.db.likes, id)
	for cid, cmt := range repo.db.comments {
		if cmt.PostID == id {
			delete(repo.db.comments, cid)
		}
	}
	return nil
}

func (repo *chatRepository) CreateComment(comment chat.Comment) (chat.Comment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.comments[comment.ID] = &comment
	return comment, nil
}

func (repo *chatRepository) QueryCommentsByPost(postID string) ([]chat.Comment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var comments []chat.Comment
	for _, cmt := range repo.db.comments {
		if cmt.PostID == postID {
			comments = append(comments, *cmt)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].CreatedAt.Before(comments[j].CreatedAt) })
	return comments, nil
}

func (repo *chatRepository) GetCommentByID(id string) (chat.Comment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if cmt, ok := repo.db.comments[id]; ok {
		return *cmt, nil
	}
	return chat.Comment{}, chat.ErrCommentNotFound
}

func (repo *chatRepository) DeleteComment(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.comments[id]; !ok {
		return chat.ErrCommentNotFound
	}
	delete(repo.db.comments, id)
	return nil
}

func (repo *chatRepository) ToggleLike(postID string, forUserID int) (bool, int, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.posts[postID]; !ok {
		return false, 0, chat.ErrPostNotFound
	}
	likes := repo.db.likes[postID]
	if likes == nil {
		likes = make(map[int]bool)
		repo.db.likes[postID] = likes
	}

	var liked bool
	if likes[forUserID] {
		delete(likes, forUserID)
	} else {
		likes[forUserID] = true
		liked = true
	}
	return liked, len(likes), nil
}
