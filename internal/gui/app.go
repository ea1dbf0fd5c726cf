package gui

import "github.com/appengine-ltd/ascii-wars/internal/armoury"

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Options   armoury.Options
	Units     armoury.Units
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) newSession() (*armoury.Session, error) {
	return armoury.NewSession(armoury.WithDefaults(a.cfg.Options, a.cfg.Units))
}
