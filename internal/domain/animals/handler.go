package animals

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"animals-api/internal/domain/locomotion"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc))
		ar.Post("/", createAnimalHandler(svc))

		ar.Get("/{id}", getAnimalHandler(svc))
		ar.Put("/{id}", updateAnimalHandler(svc))
		ar.Delete("/{id}", deleteAnimalHandler(svc))

		// Join animal -> modos de desplazamiento (por nombre)
		ar.Get("/locomotion-modes/{animalName}", animalLocomotionModesHandler(svc))
		ar.Get("/locomotion-modes/", animalLocomotionModesHandler(svc))
	})
}

// animalRequest es el cuerpo para crear o reemplazar un animal.
// Todos los campos son obligatorios; los desconocidos se ignoran.
type animalRequest struct {
	Name             *string `json:"nombre" example:"Cholito"`
	Species          *string `json:"especie" example:"Perro"`
	Domesticable     *bool   `json:"domesticable" example:"true"`
	LocomotionModeID *int    `json:"desplazamientoId" example:"1"`
}

// animalResponse representa un animal devuelto por la API.
type animalResponse struct {
	ID               int    `json:"id"`
	Name             string `json:"nombre"`
	Species          string `json:"especie"`
	Domesticable     bool   `json:"domesticable"`
	LocomotionModeID int    `json:"desplazamientoId"`
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Tags animals
// @Produce json
// @Success 200 {array} animalResponse
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal
// @Tags animals
// @Produce json
// @Param id path int true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "invalid id"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{id} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// createAnimalHandler godoc
// @Summary Crear animal
// @Description desplazamientoId no se valida contra los modos existentes.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body animalRequest true "Datos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeAnimalRequest(r)
		if !ok {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), in)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Reemplazar animal
// @Description El ID del path manda; el resto de campos se sobrescribe.
// @Tags animals
// @Accept json
// @Produce json
// @Param id path int true "ID del animal"
// @Param payload body animalRequest true "Datos del animal"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "invalid id / invalid json"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{id} [put]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		in, ok := decodeAnimalRequest(r)
		if !ok {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// deleteAnimalHandler godoc
// @Summary Eliminar animal
// @Tags animals
// @Param id path int true "ID del animal"
// @Success 204
// @Failure 400 {string} string "invalid id"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{id} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// animalLocomotionModesHandler godoc
// @Summary Modos de desplazamiento de un animal
// @Description Busca animales por nombre (sin distinguir mayúsculas) y devuelve sus modos. Los modos eliminados se omiten.
// @Tags animals
// @Produce json
// @Param animalName path string true "Nombre del animal"
// @Success 200 {array} locomotion.ModeResponse
// @Failure 400 {string} string "animal name required"
// @Router /animals/locomotion-modes/{animalName} [get]
func animalLocomotionModesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		modes, err := svc.LocomotionModesOf(r.Context(), textParam(r, "animalName"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "animal name required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, locomotion.ToModeResponses(modes))
	}
}

// decodeAnimalRequest exige las claves exactas (sin plegar mayúsculas) y un único objeto JSON.
func decodeAnimalRequest(r *http.Request) (Input, bool) {
	fields, ok := decodeObject(r.Body)
	if !ok {
		return Input{}, false
	}

	var req animalRequest
	if !field(fields, "nombre", &req.Name) ||
		!field(fields, "especie", &req.Species) ||
		!field(fields, "domesticable", &req.Domesticable) ||
		!field(fields, "desplazamientoId", &req.LocomotionModeID) {
		return Input{}, false
	}
	if req.Name == nil || req.Species == nil || req.Domesticable == nil || req.LocomotionModeID == nil {
		return Input{}, false
	}
	return Input{
		Name:             *req.Name,
		Species:          *req.Species,
		Domesticable:     *req.Domesticable,
		LocomotionModeID: *req.LocomotionModeID,
	}, true
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:               a.ID,
		Name:             a.Name,
		Species:          a.Species,
		Domesticable:     a.Domesticable,
		LocomotionModeID: a.LocomotionModeID,
	}
}

// parseID acepta solo ids que entran en 32 bits; el resto es un id inválido.
func parseID(r *http.Request) (int, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(id), true
}

// decodeObject lee un único objeto JSON; cualquier dato posterior lo invalida.
// Se lee a un mapa para comparar las claves exactas, sin plegar mayúsculas.
func decodeObject(body io.Reader) (map[string]json.RawMessage, bool) {
	dec := json.NewDecoder(body)

	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return nil, false
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, false
	}
	return fields, true
}

// field decodifica fields[key] en dst. Clave ausente o tipo incorrecto => false.
func field(fields map[string]json.RawMessage, key string, dst any) bool {
	raw, ok := fields[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func textParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "animal not found", http.StatusNotFound)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
