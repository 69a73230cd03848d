package usecases

import (
	"sort"
	"strconv"

	"github.com/stridemap/stridemap/internal/core/domain"
)

// pathPalette is the fixed color cycle for new paths. Color depends
// only on creation order, never on how many paths currently exist.
var pathPalette = []string{
	"#e6194b", // red
	"#3cb44b", // green
	"#4363d8", // blue
	"#f58231", // orange
	"#911eb4", // purple
	"#008080", // teal
	"#f032e6", // magenta
	"#9a6324", // brown
}

// Registry owns the collection of drawn paths and is its only writer.
// Sequence numbers are allocated monotonically and never reused, so a
// path id can only ever be reissued by Restore. The registry is not
// safe for concurrent use; AnnotationService serializes access.
type Registry struct {
	paths map[string]*domain.Path
	seq   int
}

// NewRegistry creates an empty path registry.
func NewRegistry() *Registry {
	return &Registry{paths: make(map[string]*domain.Path)}
}

func pathID(seq int) string {
	return "path-" + strconv.Itoa(seq)
}

// Create stores a new path for the given vertices. It always succeeds;
// an empty vertex list yields a valid path with zero length.
func (r *Registry) Create(vertices []domain.GeoPoint) *domain.Path {
	r.seq++
	p := &domain.Path{
		ID:             pathID(r.seq),
		SequenceNumber: r.seq,
		Vertices:       vertices,
		Color:          pathPalette[(r.seq-1)%len(pathPalette)],
	}
	r.paths[p.ID] = p
	return p
}

// UpdateVertices replaces a path's vertices in place and returns the
// updated path. An unknown id is a stale edit notification, not a
// fault: the call is a no-op and returns nil.
func (r *Registry) UpdateVertices(id string, vertices []domain.GeoPoint) *domain.Path {
	p, ok := r.paths[id]
	if !ok {
		return nil
	}
	p.Vertices = vertices
	return p
}

// Remove deletes a path and returns it, or nil if the id is unknown.
func (r *Registry) Remove(id string) *domain.Path {
	p, ok := r.paths[id]
	if !ok {
		return nil
	}
	delete(r.paths, id)
	return p
}

// Restore reconstructs a path from an undo snapshot, bypassing the
// normal color assignment. The id is derived from the sequence number.
// The live counter is advanced past the restored number so a future
// Create can never collide with a restored id.
func (r *Registry) Restore(vertices []domain.GeoPoint, color string, seq int) *domain.Path {
	p := &domain.Path{
		ID:             pathID(seq),
		SequenceNumber: seq,
		Vertices:       vertices,
		Color:          color,
	}
	r.paths[p.ID] = p
	if seq > r.seq {
		r.seq = seq
	}
	return p
}

// Clear removes every path unconditionally and returns the removed
// set. Clearing does not interact with the undo log.
func (r *Registry) Clear() []*domain.Path {
	removed := make([]*domain.Path, 0, len(r.paths))
	for _, p := range r.paths {
		removed = append(removed, p)
	}
	r.paths = make(map[string]*domain.Path)
	return removed
}

// Get returns a path by id, or nil.
func (r *Registry) Get(id string) *domain.Path {
	return r.paths[id]
}

// List returns all paths ordered by sequence number.
func (r *Registry) List() []*domain.Path {
	out := make([]*domain.Path, 0, len(r.paths))
	for _, p := range r.paths {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SequenceNumber < out[j].SequenceNumber
	})
	return out
}

// Len returns the number of paths currently registered.
func (r *Registry) Len() int {
	return len(r.paths)
}
