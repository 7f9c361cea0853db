package handlers

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/noteshare/backend/pkg/utils"
)

// resourceIDPattern accepts only positive decimal integers in canonical
// form: no sign, no leading zeros, no embedded non-digits. Anything else is
// treated like a route that never matched.
var resourceIDPattern = regexp.MustCompile(`^[1-9][0-9]*$`)

var (
	// errIDRouteMiss covers identifiers the route constraint rejects
	// outright: non-numeric, zero, negative. These read as "no such
	// resource", never as a malformed request.
	errIDRouteMiss = errors.New("id did not match route constraint")

	// errIDOutOfRange covers well-formed decimal strings too large to be a
	// real identifier. These are a client input error.
	errIDOutOfRange = errors.New("id out of range")
)

// parseResourceID validates a path identifier. The three failure classes
// stay distinguishable for callers: route-miss (404), out-of-range (400),
// and a successfully parsed id whose row may still be absent (404
// downstream).
func parseResourceID(raw string) (uint64, error) {
	if !resourceIDPattern.MatchString(raw) {
		return 0, errIDRouteMiss
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errIDOutOfRange
	}
	return id, nil
}

// respondResourceIDError translates a parseResourceID failure into the
// fixed response for its class, named for the resource on the route.
func respondResourceIDError(c *fiber.Ctx, err error, resource string) error {
	if errors.Is(err, errIDOutOfRange) {
		return utils.Error(c, fiber.StatusBadRequest, "invalid "+resource+" id: must be a positive integer")
	}
	return utils.Error(c, fiber.StatusNotFound, resource+" not found")
}

func getRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestID").(string); ok {
		return id
	}
	return ""
}
