// Package categories provides the CLI legend of activity categories.
package categories

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/printers"
)

// Categories prints the category registry.
type Categories struct {
	App  *app.Service
	JSON bool
	Out  io.Writer
}

// Do renders the registry in order.
func (k *Categories) Do(_ context.Context) error {
	if k.App == nil {
		return errors.New("can not list categories, no routine service")
	}
	cats := k.App.ListCategories()
	if k.JSON {
		return printers.JSON(k.Out, cats)
	}

	pp := printers.NewPretty(k.Out, k.App.Categories)
	pp.NewLine()
	pp.Legend(cats...)
	return nil
}
