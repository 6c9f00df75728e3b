package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/maneno/core/blog"
)

type blogApi struct {
	svc *blog.Service
}

func registerBlogAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *blog.Service) {
	api := blogApi{svc: svc}

	bg := g.Group("/blogs")
	bg.GET("", api.list)
	bg.GET("/:slug", api.retrieve)
	bg.POST("", api.create, jwt, staffMiddleware())
}

func (api *blogApi) list(ctx echo.Context) error {
	var filter blog.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	posts, err := api.svc.Filter(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "filtering posts")
	}
	if posts == nil {
		posts = []blog.Post{}
	}
	return ctx.JSON(http.StatusOK, posts)
}

func (api *blogApi) retrieve(ctx echo.Context) error {
	post, err := api.svc.GetBySlug(ctx.Request().Context(), ctx.Param("slug"))
	if err != nil {
		if errors.Cause(err) == blog.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting post")
	}
	return ctx.JSON(http.StatusOK, post)
}

func (api *blogApi) create(ctx echo.Context) error {
	var data blog.NewPost
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPost")
	}
	if err := data.Validate(api.svc); err != nil {
		return err
	}

	post, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating post")
	}
	return ctx.JSON(http.StatusCreated, post)
}
