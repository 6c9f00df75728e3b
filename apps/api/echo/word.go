package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/maneno/core"
	"github.com/trezcool/maneno/core/word"
)

const dateParamLayout = "2006-01-02"

type wordApi struct {
	svc *word.Service
}

func registerWordAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *word.Service) {
	api := wordApi{svc: svc}

	wg := g.Group("/daily-words")
	wg.GET("", api.list)
	wg.POST("", api.upsert, jwt, staffMiddleware())
}

// list returns the word pair of ?date when given (null body when no pair
// exists for that date), or the most recent pairs otherwise.
func (api *wordApi) list(ctx echo.Context) error {
	if dateStr := ctx.QueryParam("date"); dateStr != "" {
		date, err := time.ParseInLocation(dateParamLayout, dateStr, time.UTC)
		if err != nil {
			return core.NewValidationError(
				errors.New("invalid date"),
				core.FieldError{Field: "date", Error: "must be a valid date in 2006-01-02 format"},
			)
		}

		dw, err := api.svc.GetByDate(ctx.Request().Context(), date)
		if err != nil {
			if errors.Cause(err) == word.ErrNotFound {
				return ctx.JSON(http.StatusOK, nil)
			}
			return errors.Wrap(err, "getting daily word")
		}
		return ctx.JSON(http.StatusOK, dw)
	}

	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	words, err := api.svc.Recent(ctx.Request().Context(), limit)
	if err != nil {
		return errors.Wrap(err, "querying daily words")
	}
	if words == nil {
		words = []word.DailyWord{}
	}
	return ctx.JSON(http.StatusOK, words)
}

func (api *wordApi) upsert(ctx echo.Context) error {
	var data word.NewDailyWord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewDailyWord")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	dw, err := api.svc.Upsert(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "upserting daily word")
	}
	return ctx.JSON(http.StatusCreated, dw)
}
