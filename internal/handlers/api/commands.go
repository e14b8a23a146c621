package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/roshambo/internal/models"
	"github.com/KirkDiggler/roshambo/internal/node"
)

const errInvalidBody = models.InvalidInputError("invalid request body")

// randomChoice asks the server to pick the hand
const randomChoice = "random"

type setupRequest struct {
	CoordinatorID string `json:"coordinator_id"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type createRoomRequest struct {
	RoomID  string `json:"room_id"`
	Private bool   `json:"private"`
}

type choiceRequest struct {
	Choice string `json:"choice"`
}

// CommandResponse is what a command produced
type CommandResponse struct {
	Config       *models.NodeConfig `json:"config,omitempty"`
	Room         *models.Room       `json:"room,omitempty"`
	Sent         bool               `json:"sent"`
	RoomsDeleted int                `json:"rooms_deleted,omitempty"`
	StatsDeleted int                `json:"stats_deleted,omitempty"`
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Join(errInvalidBody, err)
	}
	return nil
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request, cmd node.Command) {
	res, err := h.executor.Execute(r.Context(), cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeSuccess(w, CommandResponse{
		Config:       res.Config,
		Room:         res.Room,
		Sent:         res.Sent,
		RoomsDeleted: res.RoomsDeleted,
		StatsDeleted: res.StatsDeleted,
	})
}

func (h *Handler) SetupLeaderboard(w http.ResponseWriter, r *http.Request) {
	var req setupRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	h.run(w, r, node.SetupLeaderboard{CoordinatorID: req.CoordinatorID})
}

func (h *Handler) SetPlayerName(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	h.run(w, r, node.SetPlayerName{Name: req.Name})
}

func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	h.run(w, r, node.CreateRoom{RoomID: req.RoomID, Private: req.Private})
}

func (h *Handler) JoinRoom(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, node.JoinRoom{RoomID: chi.URLParam(r, "roomID")})
}

func (h *Handler) SubmitChoice(w http.ResponseWriter, r *http.Request) {
	var req choiceRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	var choice models.Choice
	if strings.EqualFold(req.Choice, randomChoice) {
		choice = h.picker.Choice()
	} else {
		parsed, err := models.ParseChoice(req.Choice)
		if err != nil {
			h.writeError(w, err)
			return
		}
		choice = parsed
	}
	h.run(w, r, node.SubmitChoice{RoomID: chi.URLParam(r, "roomID"), Choice: choice})
}

// ResetLeaderboard clears every room and stat on the coordinator
func (h *Handler) ResetLeaderboard(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, node.ResetLeaderboard{})
}
