package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type movieResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        string `json:"year"`
	FileID      string `json:"file_id"`
}

type createResponse struct {
	OK    bool          `json:"ok"`
	Movie movieResponse `json:"movie"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (app *App) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/movie/{id}", app.movieHandler).Methods("GET")
	r.HandleFunc("/admin", app.adminFormHandler).Methods("GET")
	r.HandleFunc("/admin/movie", app.adminCreateHandler).Methods("POST")
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (app *App) movieHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	movie, ok := app.catalog.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Movie not found"})
		return
	}
	writeJSON(w, http.StatusOK, movieResponse{
		ID:          id,
		Title:       movie.Title,
		Description: movie.Description,
		Year:        movie.Year,
		FileID:      movie.FileID,
	})
}

func (app *App) isAdminID(value string) bool {
	return value != "" && value == strconv.FormatInt(app.config.AdminID, 10)
}

func (app *App) adminFormHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if !app.isAdminID(r.URL.Query().Get("admin_id")) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("<h3>Access denied. Admin ID required.</h3>"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`
    <h2>Kino qo'shish (Admin)</h2>
    <form method="POST" action="/admin/movie">
      <input type="hidden" name="admin_id" value="%d" />
      <label>Kod (masalan 202): <input name="id" required /></label><br/>
      <label>Title: <input name="title" required /></label><br/>
      <label>Description: <textarea name="description"></textarea></label><br/>
      <label>Year: <input name="year" /></label><br/>
      <button type="submit">Qo'shish</button>
    </form>
`, app.config.AdminID)))
}

func (app *App) adminCreateHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form"})
		return
	}

	if !app.isAdminID(r.PostFormValue("admin_id")) {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "Only admin allowed"})
		return
	}

	id := r.PostFormValue("id")
	title := r.PostFormValue("title")
	if id == "" || title == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id and title required"})
		return
	}

	err := app.catalog.Create(id, title, r.PostFormValue("description"), r.PostFormValue("year"))
	if errors.Is(err, ErrAlreadyExists) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("⚠️ %s kodli kino allaqachon mavjud!", id)})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save movie"})
		return
	}

	movie, _ := app.catalog.Get(id)
	writeJSON(w, http.StatusOK, createResponse{
		OK: true,
		Movie: movieResponse{
			ID:          id,
			Title:       movie.Title,
			Description: movie.Description,
			Year:        movie.Year,
			FileID:      movie.FileID,
		},
	})
}
