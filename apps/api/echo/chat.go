package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mwendwa/elimika/core/chat"
	"github.com/mwendwa/elimika/core/user"
)

type chatApi struct {
	svc     chat.Service
	userSvc user.Service
}

// registerChatAPI wires the community feed; every endpoint requires auth.
func registerChatAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc chat.Service, userSvc user.Service) {
	api := chatApi{svc: svc, userSvc: userSvc}

	cg := g.Group("/chat", jwt)

	cg.GET("/posts", api.queryPosts)
	cg.POST("/posts", api.createPost)
	cg.GET("/posts/:id", api.retrievePost)
	cg.DELETE("/posts/:id", api.destroyPost)
	cg.POST("/posts/:id/like", api.toggleLike)
	cg.GET("/posts/:id/comments", api.queryComments)
	cg.POST("/posts/:id/comments", api.createComment)
	cg.DELETE("/comments/:id", api.destroyComment)
}

// Handlers

func (api *chatApi) queryPosts(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	posts, err := api.svc.Feed(usr)
	if err != nil {
		return errors.Wrap(err, "querying feed")
	}
	if posts == nil {
		posts = []chat.Post{}
	}
	return ctx.JSON(http.StatusOK, posts)
}

func (api *chatApi) createPost(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	var data chat.NewPost
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPost")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	post, err := api.svc.Publish(usr, data)
	if err != nil {
		return errors.Wrap(err, "publishing post")
	}
	return ctx.JSON(http.StatusCreated, post)
}

func (api *chatApi) retrievePost(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	post, err := api.svc.GetPost(ctx.Param("id"), usr)
	if err != nil {
		if errors.Cause(err) == chat.ErrPostNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting post")
	}
	return ctx.JSON(http.StatusOK, post)
}

// destroyPost: authors may delete their own posts; admins may delete any.
func (api *chatApi) destroyPost(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	post, err := api.svc.GetPost(ctx.Param("id"), usr)
	if err != nil {
		if errors.Cause(err) == chat.ErrPostNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting post")
	}
	if post.AuthorID != usr.ID && !usr.IsAdmin() {
		return errHttpForbidden
	}

	if err := api.svc.DeletePost(post.ID); err != nil {
		return errors.Wrap(err, "deleting post")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *chatApi) toggleLike(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	liked, likes, err := api.svc.ToggleLike(ctx.Param("id"), usr)
	if err != nil {
		if errors.Cause(err) == chat.ErrPostNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "toggling like")
	}
	return ctx.JSON(http.StatusOK, LikeResponse{Liked: liked, Likes: likes})
}

func (api *chatApi) queryComments(ctx echo.Context) error {
	comments, err := api.svc.Comments(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying comments")
	}
	if comments == nil {
		comments = []chat.Comment{}
	}
	return ctx.JSON(http.StatusOK, comments)
}

func (api *chatApi) createComment(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	var data chat.NewComment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewComment")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	comment, err := api.svc.Reply(ctx.Param("id"), usr, data)
	if err != nil {
		if errors.Cause(err) == chat.ErrPostNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "replying to post")
	}
	return ctx.JSON(http.StatusCreated, comment)
}

// destroyComment: authors may delete their own comments; admins may delete any.
func (api *chatApi) destroyComment(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	cmt, err := api.svc.GetComment(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == chat.ErrCommentNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting comment")
	}
	if cmt.AuthorID != usr.ID && !usr.IsAdmin() {
		return errHttpForbidden
	}

	if err := api.svc.DeleteComment(cmt.ID); err != nil {
		return errors.Wrap(err, "deleting comment")
	}
	return ctx.NoContent(http.StatusNoContent)
}

type LikeResponse struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}
