package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mwendwa/elimika/core/mentor"
)

type mentorApi struct {
	dir *mentor.Directory
}

// registerMentorAPI exposes the read-only mentor directory.
func registerMentorAPI(g *echo.Group, dir *mentor.Directory) {
	api := mentorApi{dir: dir}

	mg := g.Group("/mentors")
	mg.GET("", api.query)
	mg.GET("/fields", api.queryFields)
	mg.GET("/:id", api.retrieve)
}

func (api *mentorApi) query(ctx echo.Context) error {
	filter := new(mentor.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	return ctx.JSON(http.StatusOK, api.dir.Filter(*filter))
}

func (api *mentorApi) queryFields(ctx echo.Context) error {
	fields := api.dir.Fields()
	if fields == nil {
		fields = []string{}
	}
	return ctx.JSON(http.StatusOK, fields)
}

func (api *mentorApi) retrieve(ctx echo.Context) error {
	m, ok := api.dir.GetByID(ctx.Param("id"))
	if !ok {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, m)
}
