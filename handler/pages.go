package handler

import (
	"net/http"

	"github.com/XPTOOLS/Tiktokdownloaderxp/httperrors"
	"github.com/XPTOOLS/Tiktokdownloaderxp/web"
	"github.com/pkg/errors"
)

type Pages struct{}

func NewPages() Pages {
	return Pages{}
}

func (h Pages) Index(w http.ResponseWriter, r *http.Request) error {
	return h.serve(w, "index.html")
}

func (h Pages) User(w http.ResponseWriter, r *http.Request) error {
	return h.serve(w, "user.html")
}

func (h Pages) Admin(w http.ResponseWriter, r *http.Request) error {
	return h.serve(w, "admin.html")
}

func (h Pages) Login(w http.ResponseWriter, r *http.Request) error {
	return h.serve(w, "login.html")
}

func (h Pages) serve(w http.ResponseWriter, name string) error {
	page, err := web.Pages.ReadFile("pages/" + name)
	if err != nil {
		return httperrors.New(http.StatusNotFound, "page not found", errors.WithMessagef(err, "read page %s", name))
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = w.Write(page)
	if err != nil {
		return errors.WithMessage(err, "write page")
	}
	return nil
}
