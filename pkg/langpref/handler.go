package langpref

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// State describes the language selection for a request.
type State struct {
	Current   string   `json:"current"`
	Default   string   `json:"default"`
	Key       string   `json:"key"`
	Languages []string `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Middleware resolves the request language, stores it in the request
// context and sets the Content-Language response header.
func (r *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		lang := r.Resolve(req)
		w.Header().Set("Content-Language", lang)
		next.ServeHTTP(w, req.WithContext(WithLanguage(req.Context(), lang)))
	})
}

// State returns the language selection for req.
func (r *Resolver) State(req *http.Request) State {
	current, ok := FromContext(req.Context())
	if !ok {
		current = r.Resolve(req)
	}
	return State{
		Current:   current,
		Default:   r.DefaultLanguage(),
		Key:       r.key,
		Languages: r.Languages(),
	}
}

// Routes returns the language switcher API:
//
//	GET    /        State for the request
//	PUT    /{lang}  remember lang, responds with the updated State
//	DELETE /        forget the remembered language
func (r *Resolver) Routes() http.Handler {
	router := chi.NewRouter()
	router.Get("/", r.handleGet)
	router.Put("/{lang}", r.handlePut)
	router.Delete("/", r.handleDelete)
	return router
}

func (r *Resolver) handleGet(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, r.State(req))
}

func (r *Resolver) handlePut(w http.ResponseWriter, req *http.Request) {
	lang, err := r.Remember(w, req, chi.URLParam(req, "lang"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrUnsupportedLanguage) {
			status = http.StatusBadRequest
		} else {
			r.log.ErrorContext(req.Context(), "failed to remember language", "error", err)
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	state := r.State(req)
	state.Current = lang
	writeJSON(w, http.StatusOK, state)
}

func (r *Resolver) handleDelete(w http.ResponseWriter, req *http.Request) {
	if err := r.Forget(w, req); err != nil {
		r.log.ErrorContext(req.Context(), "failed to forget language", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
