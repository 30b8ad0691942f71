package api

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	apperr "github.com/KirkDiggler/nft-game-bot/internal/errors"
	characterService "github.com/KirkDiggler/nft-game-bot/internal/services/character"
)

type handler struct {
	characters characterService.Service
}

type contractResponse struct {
	Address string `json:"address"`
}

func (h *handler) getContract(c *gin.Context) {
	respondOK(c, &contractResponse{Address: h.characters.ContractAddress()})
}

func (h *handler) getBoss(c *gin.Context) {
	boss, err := h.characters.GetBoss(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondOK(c, boss)
}

func (h *handler) listDefaultCharacters(c *gin.Context) {
	chars, err := h.characters.ListDefaultCharacters(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondOK(c, chars)
}

// getCharacter serves from cache unless ?refresh=true forces a chain read
func (h *handler) getCharacter(c *gin.Context) {
	owner := c.Param("owner")

	refresh := false
	if raw := c.Query("refresh"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, apperr.InvalidArgumentf("refresh must be a boolean, got '%s'", raw))
			return
		}
		refresh = parsed
	}

	getter := h.characters.GetCharacter
	if refresh {
		getter = h.characters.Refresh
	}

	snapshot, err := getter(c.Request.Context(), owner)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondOK(c, snapshot)
}

func (h *handler) fail(c *gin.Context, err error) {
	if statusFor(apperr.GetCode(err)) >= 500 {
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	respondError(c, err)
}
