package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mwendwa/elimika/core/university"
)

type universityApi struct {
	cat *university.Catalog
}

// registerUniversityAPI exposes the read-only university catalog.
func registerUniversityAPI(g *echo.Group, cat *university.Catalog) {
	api := universityApi{cat: cat}

	ug := g.Group("/universities")
	ug.GET("", api.query)
	ug.GET("/:id", api.retrieve)
}

func (api *universityApi) query(ctx echo.Context) error {
	filter := new(university.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	return ctx.JSON(http.StatusOK, api.cat.Filter(*filter))
}

func (api *universityApi) retrieve(ctx echo.Context) error {
	u, ok := api.cat.GetByID(ctx.Param("id"))
	if !ok {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, u)
}
