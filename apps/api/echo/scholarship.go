package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mwendwa/elimika/core/scholarship"
)

type scholarshipApi struct {
	cat *scholarship.Catalog
}

// registerScholarshipAPI exposes the read-only scholarship catalog.
func registerScholarshipAPI(g *echo.Group, cat *scholarship.Catalog) {
	api := scholarshipApi{cat: cat}

	sg := g.Group("/scholarships")
	sg.GET("", api.query)
	sg.GET("/:id", api.retrieve)
}

func (api *scholarshipApi) query(ctx echo.Context) error {
	filter := new(scholarship.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	return ctx.JSON(http.StatusOK, api.cat.Filter(*filter, time.Now().UTC()))
}

func (api *scholarshipApi) retrieve(ctx echo.Context) error {
	s, ok := api.cat.GetByID(ctx.Param("id"))
	if !ok {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, s)
}
