package api

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/fogleman/pt/pt"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rosh-nik15/BlueprintX-AI/plan"
	"github.com/rosh-nik15/BlueprintX-AI/scene"
)

// session holds one uploaded plan and its derived scene state. The scene
// itself comes from the composer cache; the session remembers which room is
// highlighted for this client.
type session struct {
	plan      *plan.RenderablePlan
	highlight string
}

// Handler serves plan uploads and scene queries. All geometry derivation
// happens through a shared Composer, so two sessions uploading the same
// plan content share cached meshes.
type Handler struct {
	log      *slog.Logger
	composer *scene.Composer

	mu       sync.Mutex
	sessions map[string]*session
}

func NewHandler(log *slog.Logger) *Handler {
	return &Handler{
		log:      log,
		composer: scene.NewComposer(),
		sessions: make(map[string]*session),
	}
}

// get snapshots a session's plan and highlight under the lock, so request
// goroutines never touch session fields unsynchronized.
func (h *Handler) get(id string) (*plan.RenderablePlan, string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[id]
	if !ok {
		return nil, "", false
	}
	return s.plan, s.highlight, true
}

type uploadResponse struct {
	ID    string      `json:"id"`
	Stats scene.Stats `json:"stats"`
}

// HandleUploadPlan accepts an analysis payload, normalizes it and derives
// its scene. Malformed individual entities degrade silently per the
// reconstruction contract; only a structurally unreadable document is an
// error.
func (h *Handler) HandleUploadPlan(c echo.Context) error {
	p, err := plan.Load(c.Request().Body)
	if err != nil {
		return respondError(c, NewBadRequestError("unreadable plan document", err))
	}
	rp := plan.Normalize(p)

	id := uuid.NewString()
	h.mu.Lock()
	h.sessions[id] = &session{plan: rp}
	h.mu.Unlock()

	s := h.composer.Compose(rp)
	stats := s.Stats()
	h.log.Info("plan uploaded",
		"session", id,
		"version", rp.Version[:12],
		"walls", stats.Walls,
		"doors", stats.Doors,
		"rooms", stats.Floors,
	)
	return c.JSON(http.StatusCreated, uploadResponse{ID: id, Stats: stats})
}

// HandleGetScene returns the scene graph for a session, with the session's
// highlight applied at export time; the cached scene itself is shared
// between sessions and never mutated by reads.
func (h *Handler) HandleGetScene(c echo.Context) error {
	rp, highlight, ok := h.get(c.Param("id"))
	if !ok {
		return respondError(c, NewNotFoundError("session", c.Param("id")))
	}
	s := h.composer.Compose(rp)
	return c.JSON(http.StatusOK, scene.Graph(s, rp.Version, highlight))
}

type highlightRequest struct {
	RoomID string `json:"roomId"`
}

// HandleHighlight updates the highlighted room for a session. Geometry is
// not rebuilt; only material state changes.
func (h *Handler) HandleHighlight(c echo.Context) error {
	var req highlightRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, NewBadRequestError("invalid highlight request", err))
	}
	h.mu.Lock()
	sess, ok := h.sessions[c.Param("id")]
	if ok {
		sess.highlight = req.RoomID
	}
	h.mu.Unlock()
	if !ok {
		return respondError(c, NewNotFoundError("session", c.Param("id")))
	}
	return c.JSON(http.StatusOK, map[string]string{"highlightedRoom": req.RoomID})
}

type pickRequest struct {
	Origin    scene.PointJSON `json:"origin"`
	Direction scene.PointJSON `json:"direction"`
}

type pickResponse struct {
	RoomID string `json:"roomId,omitempty"`
	Hit    bool   `json:"hit"`
}

// HandlePick casts a ray into the session's scene and reports the picked
// room, if any. This is the transport form of the scene's room-picked
// event.
func (h *Handler) HandlePick(c echo.Context) error {
	rp, _, ok := h.get(c.Param("id"))
	if !ok {
		return respondError(c, NewNotFoundError("session", c.Param("id")))
	}
	var req pickRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, NewBadRequestError("invalid pick request", err))
	}
	ray := pt.Ray{
		Origin:    pt.Vector{X: req.Origin.X, Y: req.Origin.Y, Z: req.Origin.Z},
		Direction: pt.Vector{X: req.Direction.X, Y: req.Direction.Y, Z: req.Direction.Z}.Normalize(),
	}
	s := h.composer.Compose(rp)
	roomID, hit := s.PickRoom(ray)
	return c.JSON(http.StatusOK, pickResponse{RoomID: roomID, Hit: hit})
}

// HandleHealth reports service liveness.
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
