package httpctx

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const BracketSeedHeader = "X-Bracket-Seed"

var ErrInvalidSeed = errors.New("invalid bracket seed")

// BracketSeed reads a bracket seed from the X-Bracket-Seed header. ok is
// false when the header is absent.
func BracketSeed(c *gin.Context) (seed int64, ok bool, err error) {
	raw := strings.TrimSpace(c.GetHeader(BracketSeedHeader))
	if raw == "" {
		return 0, false, nil
	}
	seed, err = strconv.ParseInt(raw, 10, 64)
	if err != nil || seed < 0 {
		return 0, false, ErrInvalidSeed
	}
	return seed, true, nil
}
