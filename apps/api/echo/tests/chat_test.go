package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	echoapi "github.com/mwendwa/elimika/apps/api/echo"
	"github.com/mwendwa/elimika/core/chat"
	"github.com/mwendwa/elimika/core/user"
	testutil "github.com/mwendwa/elimika/tests"
)

func publishPost(t *testing.T, app echoapi.Server, token, body string) chat.Post {
	t.Helper()

	data := marchallObj(t, chat.NewPost{Body: body})
	req, rec := newAuthRequest(http.MethodPost, "/v1/chat/posts", token, data)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("publishPost() failed! code = %v; body %s", rec.Code, rec.Body.String())
	}

	var post chat.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &post); err != nil {
		t.Fatalf("publishPost() json.Unmarshal() failed! err %v", err)
	}
	return post
}

func Test_chatApi_feed(t *testing.T) {
	app := setup(t)

	student := testutil.CreateUser(t, usrRepo, "Hero", "hero", "user3@test.ke", "", []string{user.RoleStudent}, true)
	token := getToken(t, student)

	t.Run("auth required", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}
		req, rec := newRequest(http.MethodGet, "/v1/chat/posts")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("empty feed", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusOK, wantData: marchallList(t)}
		req, rec := newAuthRequest(http.MethodGet, "/v1/chat/posts", token)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("blank post rejected", func(t *testing.T) {
		data := marchallObj(t, chat.NewPost{Body: "   "})
		req, rec := newAuthRequest(http.MethodPost, "/v1/chat/posts", token, data)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("failed! code = %v; want %v", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		first := publishPost(t, app, token, "Anyone sat the KCSE chemistry paper this year?")
		second := publishPost(t, app, token, "Which universities offer actuarial science?")

		req, rec := newAuthRequest(http.MethodGet, "/v1/chat/posts", token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body %s", rec.Code, rec.Body.String())
		}

		var posts []chat.Post
		if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if len(posts) != 2 {
			t.Fatalf("len(posts) = %d; want 2", len(posts))
		}
		if posts[0].ID != second.ID || posts[1].ID != first.ID {
			t.Error("feed is not ordered newest first")
		}
		if posts[0].AuthorName != student.Name {
			t.Errorf("AuthorName = %q; want %q", posts[0].AuthorName, student.Name)
		}
	})
}

func Test_chatApi_retrievePost(t *testing.T) {
	app := setup(t)

	student := testutil.CreateUser(t, usrRepo, "Hero", "hero", "user3@test.ke", "", []string{user.RoleStudent}, true)
	token := getToken(t, student)
	post := publishPost(t, app, token, "Habari! New here, any mentors for engineering?")

	tests := []httpTest{
		{name: "unknown post", path: "/v1/chat/posts/lol", wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})},
		{name: "retrieve", path: "/v1/chat/posts/" + post.ID, wantCode: http.StatusOK, wantData: marchallObj(t, post)},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		tt.token = token

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_chatApi_likes(t *testing.T) {
	app := setup(t)

	author := testutil.CreateUser(t, usrRepo, "Hero", "hero", "user3@test.ke", "", []string{user.RoleStudent}, true)
	fan := testutil.CreateUser(t, usrRepo, "King", "user02", "king@test.ke", "", []string{user.RoleStudent}, true)
	authorToken := getToken(t, author)
	fanToken := getToken(t, fan)

	post := publishPost(t, app, authorToken, "Cluster points calculator is live, try it out!")
	path := "/v1/chat/posts/" + post.ID + "/like"

	tests := []httpTest{
		{name: "unknown post", path: "/v1/chat/posts/lol/like", token: fanToken, wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})},
		{name: "like", path: path, token: fanToken, wantCode: http.StatusOK, wantData: marchallObj(t, echoapi.LikeResponse{Liked: true, Likes: 1})},
		{name: "author likes too", path: path, token: authorToken, wantCode: http.StatusOK, wantData: marchallObj(t, echoapi.LikeResponse{Liked: true, Likes: 2})},
		{name: "unlike", path: path, token: fanToken, wantCode: http.StatusOK, wantData: marchallObj(t, echoapi.LikeResponse{Liked: false, Likes: 1})},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("liked flag is per user", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/chat/posts/"+post.ID, fanToken)
		app.ServeHTTP(rec, req)
		var refreshed chat.Post
		if err := json.Unmarshal(rec.Body.Bytes(), &refreshed); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if refreshed.Liked {
			t.Error("Liked = true for a user who unliked the post")
		}
		if refreshed.Likes != 1 {
			t.Errorf("Likes = %d; want 1", refreshed.Likes)
		}
	})
}

func Test_chatApi_comments(t *testing.T) {
	app := setup(t)

	author := testutil.CreateUser(t, usrRepo, "Hero", "hero", "user3@test.ke", "", []string{user.RoleStudent}, true)
	replier := testutil.CreateUser(t, usrRepo, "King", "user02", "king@test.ke", "", []string{user.RoleStudent}, true)
	authorToken := getToken(t, author)
	replierToken := getToken(t, replier)

	post := publishPost(t, app, authorToken, "What cutoff should I expect for nursing?")
	path := "/v1/chat/posts/" + post.ID + "/comments"

	var comment chat.Comment

	t.Run("reply", func(t *testing.T) {
		data := marchallObj(t, chat.NewComment{Body: "Around 36 points the last two placement cycles."})
		req, rec := newAuthRequest(http.MethodPost, path, replierToken, data)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("failed! code = %v; body %s", rec.Code, rec.Body.String())
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &comment); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if comment.PostID != post.ID {
			t.Errorf("PostID = %q; want %q", comment.PostID, post.ID)
		}
		if comment.AuthorName != replier.Name {
			t.Errorf("AuthorName = %q; want %q", comment.AuthorName, replier.Name)
		}
	})

	t.Run("reply to unknown post", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})}
		data := marchallObj(t, chat.NewComment{Body: "lol"})
		req, rec := newAuthRequest(http.MethodPost, "/v1/chat/posts/lol/comments", replierToken, data)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("list comments", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusOK, wantData: marchallList(t, comment)}
		req, rec := newAuthRequest(http.MethodGet, path, authorToken)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("comment count on post", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/chat/posts/"+post.ID, authorToken)
		app.ServeHTTP(rec, req)
		var refreshed chat.Post
		if err := json.Unmarshal(rec.Body.Bytes(), &refreshed); err != nil {
			t.Fatalf("json.Unmarshal() failed! err %v", err)
		}
		if refreshed.Comments != 1 {
			t.Errorf("Comments = %d; want 1", refreshed.Comments)
		}
	})

	t.Run("only author or admin may delete a comment", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/chat/comments/"+comment.ID, authorToken)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "permission denied"})}, rec)

		req, rec = newAuthRequest(http.MethodDelete, "/v1/chat/comments/"+comment.ID, replierToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Errorf("failed! code = %v; want %v", rec.Code, http.StatusNoContent)
		}
	})
}

func Test_chatApi_destroyPost(t *testing.T) {
	app := setup(t)

	author := testutil.CreateUser(t, usrRepo, "Hero", "hero", "user3@test.ke", "", []string{user.RoleStudent}, true)
	other := testutil.CreateUser(t, usrRepo, "King", "user02", "king@test.ke", "", []string{user.RoleStudent}, true)
	admin := testutil.CreateUser(t, usrRepo, "Admin", "admin", "admin@test.ke", "", []string{user.RoleAdmin}, true)
	authorToken := getToken(t, author)

	ownPost := publishPost(t, app, authorToken, "Deleting this in a minute..")
	flaggedPost := publishPost(t, app, authorToken, "Totally inappropriate post")

	tests := []httpTest{
		{name: "unknown post", path: "/v1/chat/posts/lol", token: authorToken, wantCode: http.StatusNotFound},
		{name: "not the author", path: "/v1/chat/posts/" + ownPost.ID, token: getToken(t, other), wantCode: http.StatusForbidden},
		{name: "author deletes own post", path: "/v1/chat/posts/" + ownPost.ID, token: authorToken, wantCode: http.StatusNoContent},
		{name: "admin deletes any post", path: "/v1/chat/posts/" + flaggedPost.ID, token: getToken(t, admin), wantCode: http.StatusNoContent},
	}
	for _, tt := range tests {
		tt.method = http.MethodDelete

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token)
			app.ServeHTTP(rec, req)
			if rec.Code != tt.wantCode {
				t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
			}
		})
	}

	t.Run("feed is empty after deletes", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusOK, wantData: marchallList(t)}
		req, rec := newAuthRequest(http.MethodGet, "/v1/chat/posts", authorToken)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}
