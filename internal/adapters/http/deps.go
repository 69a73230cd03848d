package http

import (
	"github.com/nats-io/nats.go"

	"github.com/stridemap/stridemap/internal/core/usecases"
)

// Dependencies holds all services needed by HTTP handlers.
type Dependencies struct {
	Annotations *usecases.AnnotationService
	Locations   *usecases.LocationService
	NATS        *nats.Conn
}
