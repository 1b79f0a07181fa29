package app

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/suggestion-box/internal/submissions"
	"github.com/JaimeStill/suggestion-box/pkg/web"
)

// formKind ties a form route to the submission kind it files.
type formKind struct {
	route string
	path  string
	kind  submissions.Kind
}

// FormValues holds the submitted field values echoed back into a form.
type FormValues struct {
	Subject string
	Body    string
	Contact string
}

// FormView is the view data of the suggest and report views.
type FormView struct {
	Kind      submissions.Kind
	Action    string
	Submitted bool
	Values    FormValues
	Errors    submissions.FieldErrors
}

// HasErrors reports whether the form failed validation.
func (f FormView) HasErrors() bool {
	return len(f.Errors) > 0
}

type forms struct {
	nav     *web.Navigator
	subs    submissions.System
	maxSize int64
	logger  *slog.Logger
	kinds   []formKind
}

func newForms(nav *web.Navigator, subs submissions.System, maxSize int64, logger *slog.Logger) *forms {
	return &forms{
		nav:     nav,
		subs:    subs,
		maxSize: maxSize,
		logger:  logger.With("handler", "forms"),
		kinds: []formKind{
			{route: "suggest", path: "/suggest", kind: submissions.KindSuggestion},
			{route: "report", path: "/report", kind: submissions.KindReport},
		},
	}
}

func (f *forms) viewData(k formKind) web.DataFunc {
	return func(r *http.Request) any {
		return FormView{
			Kind:      k.kind,
			Action:    f.action(k),
			Submitted: r.URL.Query().Get("submitted") == "1",
		}
	}
}

func (f *forms) submit(k formKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, f.maxSize)
		if err := r.ParseForm(); err != nil {
			status := http.StatusBadRequest
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				status = http.StatusRequestEntityTooLarge
			}
			f.render(w, status, k, FormValues{}, submissions.FieldErrors{"form": http.StatusText(status)})
			return
		}

		values := FormValues{
			Subject: r.PostForm.Get("subject"),
			Body:    r.PostForm.Get("body"),
			Contact: r.PostForm.Get("contact"),
		}

		cmd := submissions.CreateCommand{
			Kind:    k.kind,
			Subject: values.Subject,
			Body:    values.Body,
		}
		if values.Contact != "" {
			cmd.Contact = &values.Contact
		}

		if _, err := f.subs.Create(r.Context(), cmd); err != nil {
			var verr *submissions.ValidationError
			if errors.As(err, &verr) {
				f.render(w, http.StatusUnprocessableEntity, k, values, verr.Fields)
				return
			}

			status := submissions.MapHTTPStatus(err)
			f.logger.Error("create submission failed", "kind", k.kind, "error", err)
			f.render(w, status, k, values, submissions.FieldErrors{"form": "Your submission could not be saved. Please try again."})
			return
		}

		http.Redirect(w, r, f.action(k)+"?submitted=1", http.StatusSeeOther)
	}
}

func (f *forms) render(w http.ResponseWriter, status int, k formKind, values FormValues, errs submissions.FieldErrors) {
	data := FormView{
		Kind:   k.kind,
		Action: f.action(k),
		Values: values,
		Errors: errs,
	}
	if err := f.nav.Render(w, status, k.route, data); err != nil {
		f.logger.Error("render form failed", "route", k.route, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (f *forms) action(k formKind) string {
	url, err := f.nav.URL(k.route)
	if err != nil {
		return k.path
	}
	return url
}
