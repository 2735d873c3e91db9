package order

import "hyperlocal/internal/core/domain/model/kernel"

// Actor is the authenticated user acting on an order under their active role.
type Actor struct {
	ID     kernel.UUID
	Role   kernel.Role
	Online bool
}

func NewActor(id kernel.UUID, role kernel.Role, online bool) Actor {
	return Actor{ID: id, Role: role, Online: online}
}
