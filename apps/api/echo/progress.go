package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/maneno/core/progress"
)

type progressApi struct {
	svc *progress.Service
}

// registerProgressAPI wires the learner progress endpoints. They are
// consumed directly by the learner frontend and carry no auth.
func registerProgressAPI(g *echo.Group, svc *progress.Service) {
	api := progressApi{svc: svc}

	pg := g.Group("/progress")
	pg.GET("", api.retrieve)
	pg.POST("", api.recordActivity)
}

func (api *progressApi) retrieve(ctx echo.Context) error {
	prog, err := api.svc.GetOrCreate(ctx.Request().Context(), ctx.QueryParam("userId"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, prog)
}

func (api *progressApi) recordActivity(ctx echo.Context) error {
	var data progress.ReportedActivity
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ReportedActivity")
	}

	prog, err := api.svc.RecordActivity(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, prog)
}
