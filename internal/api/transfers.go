package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcoelho/zombie-horde/internal/constants"
	"github.com/mcoelho/zombie-horde/internal/game"
	"github.com/mcoelho/zombie-horde/internal/logging"
	"github.com/mcoelho/zombie-horde/internal/service"
)

type ApproveRequest struct {
	Caller   string `json:"caller"`
	Approved string `json:"approved"`
}

// ApproveZombie lets a zombie's owner delegate transfer rights to another
// principal.
func (h *ZombieHandler) ApproveZombie(c *gin.Context) {
	id, ok := parseZombieID(c)
	if !ok {
		return
	}
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.Caller == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrCallerRequired})
		return
	}

	ev, err := service.Approve(h.led, h.repo, game.Principal(req.Caller), id, game.Principal(req.Approved))
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": ev})
}

type TransferRequest struct {
	Caller string `json:"caller"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// TransferZombie moves ownership of a zombie. The caller must be the current
// owner or the approved principal.
func (h *ZombieHandler) TransferZombie(c *gin.Context) {
	id, ok := parseZombieID(c)
	if !ok {
		return
	}
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.Caller == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrCallerRequired})
		return
	}
	if req.To == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrOwnerRequired})
		return
	}

	ev, err := service.Transfer(h.led, h.repo, game.Principal(req.Caller), game.Principal(req.From), game.Principal(req.To), id)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	logging.Info("zombie transferred", logging.Fields{constants.LogFieldZombieID: id, constants.LogFieldCaller: req.Caller})
	c.JSON(http.StatusOK, gin.H{"event": ev})
}
