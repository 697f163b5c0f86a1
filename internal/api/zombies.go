package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mcoelho/zombie-horde/internal/constants"
	"github.com/mcoelho/zombie-horde/internal/game"
	"github.com/mcoelho/zombie-horde/internal/logging"
	"github.com/mcoelho/zombie-horde/internal/service"
)

type CreateZombieRequest struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// CreateZombie creates a new zombie for the requested owner. A principal may
// only use this entry point while it owns no zombie.
func (h *ZombieHandler) CreateZombie(c *gin.Context) {
	var req CreateZombieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	owner := game.Principal(strings.TrimSpace(req.Owner))
	if owner == game.None {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrOwnerRequired})
		return
	}

	z, ev, err := service.Spawn(h.led, h.repo, owner, req.Name)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	logging.Info("zombie created", logging.Fields{constants.LogFieldZombieID: z.ID, constants.LogFieldOwner: string(owner)})
	c.JSON(http.StatusCreated, gin.H{"zombie": z, "event": ev})
}

// GetZombie returns a zombie by ID.
func (h *ZombieHandler) GetZombie(c *gin.Context) {
	id, ok := parseZombieID(c)
	if !ok {
		return
	}
	z, err := h.led.Get(id)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, z)
}

// GetZombieOwner returns the owning principal of a zombie.
func (h *ZombieHandler) GetZombieOwner(c *gin.Context) {
	id, ok := parseZombieID(c)
	if !ok {
		return
	}
	owner, err := h.led.OwnerOf(id)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"owner": owner})
}

// ListOwnerZombies returns every zombie owned by the principal in the path.
func (h *ZombieHandler) ListOwnerZombies(c *gin.Context) {
	owner := game.Principal(c.Param("owner"))
	c.JSON(http.StatusOK, h.led.ZombiesByOwner(owner))
}

// GetOwnerCount returns how many zombies the principal owns.
func (h *ZombieHandler) GetOwnerCount(c *gin.Context) {
	owner := game.Principal(c.Param("owner"))
	c.JSON(http.StatusOK, gin.H{"owner": owner, "count": h.led.OwnerCount(owner)})
}
