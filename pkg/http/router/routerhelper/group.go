package routerhelper

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup prefixes every registered route, so controllers only name
// their own paths.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	return &RouteGroup{
		router: router,
		prefix: prefix,
	}
}

func (g *RouteGroup) GET(path string, handle func(http.ResponseWriter, *http.Request, httprouter.Params)) {
	g.router.GET(g.prefix+path, handle)
}

func (g *RouteGroup) POST(path string, handle func(http.ResponseWriter, *http.Request, httprouter.Params)) {
	g.router.POST(g.prefix+path, handle)
}
