package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/roshambo/internal/models"
	"github.com/KirkDiggler/roshambo/internal/services/query"
)

const errInvalidLimit = models.InvalidInputError("limit must be a non-negative integer")

// reply writes out or the error
func reply[T any](h *Handler, w http.ResponseWriter, out T, err error) {
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w, out)
}

// AvailableRooms accepts ?visibility=public|private
func (h *Handler) AvailableRooms(w http.ResponseWriter, r *http.Request) {
	out, err := h.query.AvailableRooms(r.Context(), &query.AvailableRoomsInput{
		Visibility: query.Visibility(r.URL.Query().Get("visibility")),
	})
	reply(h, w, out, err)
}

func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	out, err := h.query.ListRooms(r.Context(), &query.ListRoomsInput{})
	reply(h, w, out, err)
}

func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	out, err := h.query.GetRoom(r.Context(), &query.GetRoomInput{RoomID: chi.URLParam(r, "roomID")})
	reply(h, w, out, err)
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	out, err := h.query.GetLeaderboard(r.Context(), &query.GetLeaderboardInput{})
	reply(h, w, out, err)
}

func (h *Handler) ListStats(w http.ResponseWriter, r *http.Request) {
	out, err := h.query.ListStats(r.Context(), &query.ListStatsInput{})
	reply(h, w, out, err)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	out, err := h.query.GetStats(r.Context(), &query.GetStatsInput{NodeID: chi.URLParam(r, "nodeID")})
	reply(h, w, out, err)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	out, err := h.query.ListPlayers(r.Context(), &query.ListPlayersInput{})
	reply(h, w, out, err)
}

func (h *Handler) GetPlayerName(w http.ResponseWriter, r *http.Request) {
	out, err := h.query.GetPlayerName(r.Context(), &query.GetPlayerNameInput{NodeID: chi.URLParam(r, "nodeID")})
	reply(h, w, out, err)
}

// History accepts ?limit=n
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.writeError(w, errInvalidLimit)
			return
		}
		limit = n
	}

	out, err := h.query.History(r.Context(), &query.HistoryInput{NodeID: chi.URLParam(r, "nodeID"), Limit: limit})
	reply(h, w, out, err)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	out, err := h.query.Summary(r.Context(), &query.SummaryInput{})
	reply(h, w, out, err)
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	out, err := h.query.GetMe(r.Context(), &query.GetMeInput{})
	reply(h, w, out, err)
}

func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	out, err := h.query.GetConfig(r.Context(), &query.GetConfigInput{})
	reply(h, w, out, err)
}
