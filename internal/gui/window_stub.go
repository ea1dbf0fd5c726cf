//go:build !cgo

package gui

import "errors"

var ErrWindowUnavailable = errors.New("window frontend requires a cgo build with raylib")

func (a *App) Run() error {
	return ErrWindowUnavailable
}
