package locomotion

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/locomotion-modes", func(lr chi.Router) {
		lr.Get("/", listModesHandler(svc))
		lr.Post("/", createModeHandler(svc))

		// Filtro por tipo (texto libre, case-insensitive)
		lr.Get("/category/{category}", listModesByCategoryHandler(svc))
		lr.Get("/category/", listModesByCategoryHandler(svc))

		lr.Get("/{id}", getModeHandler(svc))
		lr.Put("/{id}", updateModeHandler(svc))
		lr.Delete("/{id}", deleteModeHandler(svc))
	})
}

// modeRequest es el cuerpo para crear o reemplazar un modo de desplazamiento.
// Punteros para detectar campos ausentes: todos son obligatorios.
type modeRequest struct {
	Category *string  `json:"tipo" example:"Terrestre"`
	Speed    *float64 `json:"velocidad" example:"50"`
}

// ModeResponse es la representación JSON de un modo de desplazamiento.
// También la devuelve el join de animales.
type ModeResponse struct {
	ID       int     `json:"id"`
	Category string  `json:"tipo"`
	Speed    float64 `json:"velocidad"`
}

// listModesHandler godoc
// @Summary Listar modos de desplazamiento
// @Tags locomotion-modes
// @Produce json
// @Success 200 {array} ModeResponse
// @Router /locomotion-modes [get]
func listModesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, ToModeResponses(items))
	}
}

// getModeHandler godoc
// @Summary Obtener modo de desplazamiento
// @Tags locomotion-modes
// @Produce json
// @Param id path int true "ID del modo"
// @Success 200 {object} ModeResponse
// @Failure 400 {string} string "invalid id"
// @Failure 404 {string} string "locomotion mode not found"
// @Router /locomotion-modes/{id} [get]
func getModeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		m, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToModeResponse(m))
	}
}

// listModesByCategoryHandler godoc
// @Summary Filtrar modos por tipo
// @Description Coincidencia exacta sin distinguir mayúsculas. Sin coincidencias devuelve una lista vacía.
// @Tags locomotion-modes
// @Produce json
// @Param category path string true "Tipo (Terrestre, Aéreo, Acuático...)"
// @Success 200 {array} ModeResponse
// @Failure 400 {string} string "category required"
// @Router /locomotion-modes/category/{category} [get]
func listModesByCategoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByCategory(r.Context(), textParam(r, "category"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "category required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, ToModeResponses(items))
	}
}

// createModeHandler godoc
// @Summary Crear modo de desplazamiento
// @Tags locomotion-modes
// @Accept json
// @Produce json
// @Param payload body modeRequest true "Tipo y velocidad (km/h)"
// @Success 201 {object} ModeResponse
// @Failure 400 {string} string "invalid json"
// @Router /locomotion-modes [post]
func createModeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeModeRequest(r)
		if !ok {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Create(r.Context(), in)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, ToModeResponse(m))
	}
}

// updateModeHandler godoc
// @Summary Reemplazar modo de desplazamiento
// @Description Sobrescribe tipo y velocidad conservando el ID y la posición en la colección.
// @Tags locomotion-modes
// @Accept json
// @Produce json
// @Param id path int true "ID del modo"
// @Param payload body modeRequest true "Tipo y velocidad (km/h)"
// @Success 200 {object} ModeResponse
// @Failure 400 {string} string "invalid id / invalid json"
// @Failure 404 {string} string "locomotion mode not found"
// @Router /locomotion-modes/{id} [put]
func updateModeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		in, ok := decodeModeRequest(r)
		if !ok {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToModeResponse(m))
	}
}

// deleteModeHandler godoc
// @Summary Eliminar modo de desplazamiento
// @Description No valida animales que lo referencian; el join los omite.
// @Tags locomotion-modes
// @Param id path int true "ID del modo"
// @Success 204
// @Failure 400 {string} string "invalid id"
// @Failure 404 {string} string "locomotion mode not found"
// @Router /locomotion-modes/{id} [delete]
func deleteModeHandler(svc *Service) http.HandlerFunc {
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

// decodeModeRequest ignora campos desconocidos pero exige tipo y velocidad,
// con la clave exacta.
func decodeModeRequest(r *http.Request) (Input, bool) {
	fields, ok := decodeObject(r.Body)
	if !ok {
		return Input{}, false
	}

	var req modeRequest
	if !field(fields, "tipo", &req.Category) || !field(fields, "velocidad", &req.Speed) {
		return Input{}, false
	}
	if req.Category == nil || req.Speed == nil {
		return Input{}, false
	}
	return Input{Category: *req.Category, Speed: *req.Speed}, true
}

func ToModeResponse(m Mode) ModeResponse {
	return ModeResponse{
		ID:       m.ID,
		Category: m.Category,
		Speed:    m.Speed,
	}
}

func ToModeResponses(items []Mode) []ModeResponse {
	out := make([]ModeResponse, 0, len(items))
	for _, m := range items {
		out = append(out, ToModeResponse(m))
	}
	return out
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

// textParam devuelve el parámetro de path decodificado.
// chi enruta sobre RawPath cuando existe, y ahí los params llegan escapados.
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
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "locomotion mode not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado en animals/locomotion para no crear un paquete de helpers
// por dos funciones.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
