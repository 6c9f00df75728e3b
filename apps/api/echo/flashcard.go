package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/maneno/core/flashcard"
)

type flashcardApi struct {
	svc *flashcard.Service
}

func registerFlashcardAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *flashcard.Service) {
	api := flashcardApi{svc: svc}

	fg := g.Group("/flashcards")
	fg.GET("", api.list)
	fg.POST("", api.create, jwt, staffMiddleware())
}

func (api *flashcardApi) list(ctx echo.Context) error {
	var filter flashcard.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	cards, err := api.svc.Filter(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "filtering flashcards")
	}
	if cards == nil {
		cards = []flashcard.Flashcard{}
	}
	return ctx.JSON(http.StatusOK, cards)
}

func (api *flashcardApi) create(ctx echo.Context) error {
	var data flashcard.NewFlashcard
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFlashcard")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	fc, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating flashcard")
	}
	return ctx.JSON(http.StatusCreated, fc)
}
