package server

import (
	"app/internal/config"
	appmw "app/internal/middleware"
	"app/internal/session"
	"app/web"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

// 各ハンドラはこの形でルートを登録する。
type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

type requestValidator struct {
	v *validator.Validate
}

func (rv *requestValidator) Validate(i interface{}) error {
	return rv.v.Struct(i)
}

// New はechoを組み立てる。起動は呼び出し側で e.Start する。
func New(cfg config.Config, sessions *session.Manager, handlers ...RouteRegistrar) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	if cfg.Debug {
		e.Logger.SetLevel(log.DEBUG)
	} else {
		e.Logger.SetLevel(log.INFO)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = &requestValidator{v: validator.New()}

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(appmw.LoadSession(sessions))

	for _, h := range handlers {
		h.RegisterRoutes(e)
	}

	return e, nil
}
