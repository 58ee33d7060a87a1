// Package web serves the HTML front end over an inventory.Store. Every form submission answers with a redirect that
// carries a flash message describing what happened, whether it succeeded or not.
package web

import (
	"embed"
	"html/template"
	"math"

	"github.com/gin-gonic/gin"

	"github.com/jt0/varasto/gomerr"
	"github.com/jt0/varasto/inventory"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"amount":  formatAmount,
	"percent": func(ratio float64) int { return int(math.Round(ratio * 100)) },
}

func GinEngine(store *inventory.Store, secretKey string) (*gin.Engine, gomerr.Gomerr) {
	if store == nil {
		return nil, gomerr.Configuration("an inventory store is required")
	}
	if secretKey == "" {
		return nil, gomerr.Configuration("a secret key is required to sign flash messages")
	}

	templates, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, gomerr.Configuration("unable to parse templates").Wrap(err)
	}

	h := &handlers{store: store, flashes: newFlasher(secretKey)}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.SetHTMLTemplate(templates)
	r.Use(gin.Recovery(), RequestLogger(), flashErrorHandler(h.flashes))

	r.GET("/", h.index)
	r.GET("/healthz", h.healthz)
	r.POST("/inventory/create", h.redirecting(h.create))
	r.GET("/inventory/:id", h.view)
	r.POST("/inventory/:id/update", h.redirecting(h.update))
	r.POST("/inventory/:id/add", h.redirecting(h.add))
	r.POST("/inventory/:id/remove", h.redirecting(h.remove))
	r.POST("/inventory/:id/delete", h.redirecting(h.delete))

	return r, nil
}
