package pagination

import (
	"github.com/gofiber/fiber/v2"
)

// FromRequest reads the page and per_page query parameters of c, resolved
// against cfg.
func FromRequest(c *fiber.Ctx, cfg Config) (page, perPage int) {
	return cfg.Normalize(c.QueryInt("page", 1), c.QueryInt("per_page", 0))
}

// Respond writes the section as the JSON response body.
func Respond[T any](c *fiber.Ctx, s *Section[T]) error {
	return c.JSON(s)
}

// RespondPage slices the requested page out of items and writes it.
func RespondPage[T any](c *fiber.Ctx, cfg Config, items []T) error {
	page, perPage := FromRequest(c, cfg)
	return Respond(c, SectionOf(items, page, perPage))
}
