package static

import (
	"blog/internal/http/handlers/response"
	"net/http"
	"strings"
)

type Handler struct {
	files http.Handler
	dir   http.Dir
}

// New serves the regular files of dir under prefix. Directory listings are not served.
func New(prefix string, dir string) *Handler {
	return &Handler{
		files: http.StripPrefix(prefix, http.FileServer(http.Dir(dir))),
		dir:   http.Dir(dir),
	}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	name := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	if name == "" || !h.isFile(name) {
		response.RenderNotFound(rw)
		return
	}
	h.files.ServeHTTP(rw, r)
}

func (h *Handler) isFile(name string) bool {
	f, err := h.dir.Open("/" + name)
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	return err == nil && info.Mode().IsRegular()
}
