package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stridemap/stridemap/internal/core/domain"
	"github.com/stridemap/stridemap/internal/pkg/metrics"
)

// ListPathsHandler returns the sidebar rows for every drawn path.
func ListPathsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows := deps.Annotations.ListPaths()

		offset := c.QueryInt("offset", 0)
		limit := c.QueryInt("limit", 100)
		if offset < 0 {
			offset = 0
		}
		if limit <= 0 || limit > 200 {
			limit = 100
		}

		total := len(rows)
		if offset >= total {
			rows = nil
		} else {
			end := offset + limit
			if end > total {
				end = total
			}
			rows = rows[offset:end]
		}

		pg := Pagination{Offset: offset, Limit: limit, Total: total}
		SetLinkHeaders(c, pg)
		return c.JSON(PaginatedResponse{Data: rows, Pagination: pg})
	}
}

// GetPathHandler returns a single path with its vertices and labels.
func GetPathHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return errBadRequest(c, "path id is required")
		}
		p := deps.Annotations.GetPath(id)
		if p == nil {
			return errNotFound(c, "path not found")
		}
		return c.JSON(p)
	}
}

// SummaryHandler returns the totals panel across all paths.
func SummaryHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(deps.Annotations.Summary())
	}
}

// DeletePathHandler removes a path on behalf of the sidebar delete
// control. This is the user-initiated flow, so it records an undo
// entry before the path goes away.
func DeletePathHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return errBadRequest(c, "path id is required")
		}
		if !deps.Annotations.DeletePath(c.UserContext(), id) {
			return errNotFound(c, "path not found")
		}
		metrics.PathsDeleted.WithLabelValues("sidebar").Inc()
		return c.SendStatus(204)
	}
}

// ClearPathsHandler removes every path. Clearing never records undo
// entries; a subsequent undo replays whatever preceded the clear.
func ClearPathsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deps.Annotations.ClearAll(c.UserContext())
		metrics.PathsDeleted.WithLabelValues("clear").Inc()
		return c.SendStatus(204)
	}
}

// UndoHandler reverses the most recent create or user deletion. An
// empty undo log is not an error: the response just reports that
// nothing was undone.
func UndoHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		action, ok := deps.Annotations.Undo(c.UserContext())
		if !ok {
			return c.JSON(fiber.Map{"undone": false})
		}

		metrics.UndoApplied.WithLabelValues(string(action.Kind)).Inc()
		if action.Kind == domain.UndoDelete {
			metrics.PathsRestored.Inc()
		} else {
			metrics.PathsDeleted.WithLabelValues("undo").Inc()
		}

		return c.JSON(fiber.Map{
			"undone":  true,
			"kind":    string(action.Kind),
			"path_id": action.PathID,
		})
	}
}

// ListLocationsHandler returns the named recenter locations,
// optionally filtered by a q query.
func ListLocationsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if len(query) > 200 {
			return errBadRequest(c, "query too long (max 200 characters)")
		}

		locations := deps.Locations.Search(query)

		offset := c.QueryInt("offset", 0)
		limit := c.QueryInt("limit", 100)
		if offset < 0 {
			offset = 0
		}
		if limit <= 0 || limit > 200 {
			limit = 100
		}

		total := len(locations)
		if offset >= total {
			locations = nil
		} else {
			end := offset + limit
			if end > total {
				end = total
			}
			locations = locations[offset:end]
		}

		pg := Pagination{Offset: offset, Limit: limit, Total: total}
		SetLinkHeaders(c, pg)
		return c.JSON(PaginatedResponse{Data: locations, Pagination: pg})
	}
}

// GetLocationHandler returns one named location by slug.
func GetLocationHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := c.Params("slug")
		if slug == "" {
			return errBadRequest(c, "location slug is required")
		}
		loc := deps.Locations.Get(slug)
		if loc == nil {
			return errNotFound(c, "location not found")
		}
		return c.JSON(loc)
	}
}
