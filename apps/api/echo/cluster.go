package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mwendwa/elimika/core"
	"github.com/mwendwa/elimika/core/cluster"
	"github.com/mwendwa/elimika/core/user"
)

type clusterApi struct {
	svc     cluster.Service
	userSvc user.Service
}

func registerClusterAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc cluster.Service, userSvc user.Service) {
	api := clusterApi{svc: svc, userSvc: userSvc}

	cg := g.Group("/cluster")

	// reference data for the grade entry UIs; no auth needed
	cg.GET("/subjects", api.querySubjects)
	cg.GET("/grades", api.queryGrades)
	cg.GET("/courses", api.queryCourses)
	cg.GET("/categories", api.queryCategories)

	// scoring endpoints accept ad-hoc grade input so prospective students
	// can try the matcher before creating an account
	cg.POST("/top-four", api.topFour)
	cg.POST("/match", api.match)

	// authed convenience: match against the grades saved on the profile
	ag := cg.Group("", jwt)
	ag.GET("/match/me", api.matchSelf)
}

// Handlers

func (api *clusterApi) querySubjects(ctx echo.Context) error {
	if group := ctx.QueryParam("group"); group != "" {
		subjects := api.svc.SubjectsInGroup(cluster.SubjectGroup(group))
		if subjects == nil {
			return core.NewValidationError(nil, core.FieldError{Field: "group", Error: "unknown subject group"})
		}
		return ctx.JSON(http.StatusOK, subjects)
	}
	return ctx.JSON(http.StatusOK, api.svc.Subjects())
}

func (api *clusterApi) queryGrades(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Grades())
}

func (api *clusterApi) queryCourses(ctx echo.Context) error {
	courses := api.svc.Courses()
	if category := ctx.QueryParam("category"); category != "" {
		filtered := make([]cluster.CourseCutoff, 0, len(courses))
		for _, c := range courses {
			if c.Category == category {
				filtered = append(filtered, c)
			}
		}
		courses = filtered
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *clusterApi) queryCategories(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Categories())
}

func (api *clusterApi) topFour(ctx echo.Context) error {
	var data GradesRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GradesRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	total, err := api.svc.TopFourTotal(data.Grades)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, TopFourResponse{Points: total})
}

func (api *clusterApi) match(ctx echo.Context) error {
	var data GradesRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GradesRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.svc.Match(data.Grades))
}

func (api *clusterApi) matchSelf(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	if len(usr.Profile.Grades) == 0 {
		return core.NewValidationError(errors.New("no grades saved on profile"))
	}
	return ctx.JSON(http.StatusOK, api.svc.Match(usr.Profile.Grades))
}

type (
	GradesRequest struct {
		Grades map[string]cluster.Grade `json:"grades" validate:"required"`
	}

	TopFourResponse struct {
		Points int `json:"points"`
	}
)

// Validate rejects unknown subjects and malformed grade symbols up-front so
// the scoring code never sees them.
func (gr *GradesRequest) Validate() error {
	if err := core.Validate.Struct(gr); err != nil {
		return err
	}
	var fldErrs []core.FieldError
	for id, g := range gr.Grades {
		if _, ok := cluster.SubjectByID(id); !ok {
			fldErrs = append(fldErrs, core.FieldError{Field: id, Error: "unknown subject"})
			continue
		}
		if !g.IsValid() {
			fldErrs = append(fldErrs, core.FieldError{Field: id, Error: "invalid grade symbol"})
		}
	}
	if fldErrs != nil {
		return core.NewValidationError(nil, fldErrs...)
	}
	return nil
}
