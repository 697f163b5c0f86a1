package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mcoelho/zombie-horde/internal/constants"
	"github.com/mcoelho/zombie-horde/internal/ledger"
)

// parseZombieID extracts and validates the :zombieID path parameter. On
// failure it writes the 400 response itself and reports ok=false.
func parseZombieID(c *gin.Context) (uint, bool) {
	raw := c.Param("zombieID")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidZombieID})
		return 0, false
	}
	return uint(id), true
}

// respondLedgerError maps a ledger sentinel error to an HTTP status. Any
// other error (persistence failures, mostly) becomes a 500.
func respondLedgerError(c *gin.Context, err error) {
	switch err {
	case ledger.ErrInvalidName:
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
	case ledger.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrZombieNotFound})
	case ledger.ErrAlreadyOwnsZombie, ledger.ErrOwnershipMismatch, ledger.ErrOnCooldown:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
	case ledger.ErrNotOwner, ledger.ErrNotAuthorized:
		c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPersist})
	}
}
