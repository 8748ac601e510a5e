package handler

import (
	"io/fs"
	"net/http"

	"github.com/vfg2006/mje-dashboard/web"
)

// StaticHandler serve os assets embutidos em /static/
func StaticHandler() (http.Handler, error) {
	sub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return nil, err
	}

	static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		static.ServeHTTP(w, r)
	}), nil
}
