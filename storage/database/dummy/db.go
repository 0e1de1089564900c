package dummydb

import (
	"sync"

	"github.com/mwendwa/elimika/core/chat"
	"github.com/mwendwa/elimika/core/user"
)

type (
	DB struct {
		user *userTable
		chat *chatTables
	}

	userTable struct {
		sync.RWMutex
		table map[int]*user.User
	}

	chatTables struct {
		sync.RWMutex
		posts    map[string]*chat.Post
		comments map[string]*chat.Comment
		likes    map[string]map[int]bool // post id → user ids
	}
)

func Open() (*DB, error) {
	db := &DB{
		user: &userTable{table: make(map[int]*user.User)},
		chat: &chatTables{
			posts:    make(map[string]*chat.Post),
			comments: make(map[string]*chat.Comment),
			likes:    make(map[string]map[int]bool),
		},
	}
	return db, nil
}
