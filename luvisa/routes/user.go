package routes

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"luvisa/luvisa/config"
	"luvisa/luvisa/controllers"
	"luvisa/luvisa/middlewares"
	"luvisa/luvisa/sources/storage"

	"github.com/go-chi/chi/v5"
)

// generic wrapper to reduce boilerplate
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(res)
	}
}

func UserRoutes(ctrl *controllers.UserController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Get("/me", handleJSON(func(r *http.Request) (any, int, error) {
			id, ok := r.Context().Value(middlewares.UserIDKey).(int)
			if !ok {
				return nil, http.StatusUnauthorized, errors.New("unauthorized")
			}
			profile, err := ctrl.GetProfile(r.Context(), id)
			if err != nil {
				if errors.Is(err, controllers.ErrUserNotFound) {
					return nil, http.StatusNotFound, err
				}
				return nil, http.StatusInternalServerError, err
			}
			return profile, http.StatusOK, nil
		}))

		// Multipart: display_name, status_message, optional avatar_file.
		gr.Put("/me", handleJSON(func(r *http.Request) (any, int, error) {
			id, ok := r.Context().Value(middlewares.UserIDKey).(int)
			if !ok {
				return nil, http.StatusUnauthorized, errors.New("unauthorized")
			}
			if err := r.ParseMultipartForm(storage.MaxAvatarBytes * 4); err != nil {
				return nil, http.StatusBadRequest, err
			}
			displayName := r.FormValue("display_name")
			status := r.FormValue("status_message")

			var avatarData []byte
			var avatarContentType string
			if file, header, err := r.FormFile("avatar_file"); err == nil {
				defer file.Close()
				avatarData, err = io.ReadAll(file)
				if err != nil {
					return nil, http.StatusBadRequest, err
				}
				avatarContentType = header.Header.Get("Content-Type")
			}

			profile, err := ctrl.UpdateProfile(r.Context(), id, displayName, status, avatarData, avatarContentType)
			switch {
			case errors.Is(err, storage.ErrAvatarTooLarge):
				return nil, http.StatusRequestEntityTooLarge, err
			case errors.Is(err, controllers.ErrStorageUnavailable):
				return nil, http.StatusServiceUnavailable, err
			case errors.Is(err, controllers.ErrUserNotFound):
				return nil, http.StatusNotFound, err
			case err != nil:
				return nil, http.StatusInternalServerError, err
			}
			return profile, http.StatusOK, nil
		}))

		gr.Get("/companion", handleJSON(func(r *http.Request) (any, int, error) {
			return ctrl.CompanionProfile(), http.StatusOK, nil
		}))
	})

	// Avatar serving stays unauthenticated so <img> tags can load it.
	r.Get("/avatar/{user_id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "user_id"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		data, contentType, err := ctrl.GetAvatar(r.Context(), id)
		if err != nil {
			if errors.Is(err, controllers.ErrNoAvatar) {
				// No uploaded picture: fall back to the bundled default.
				http.ServeFile(w, r, "web/avatars/default_avatar.png")
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Write(data)
	})

	return r
}
