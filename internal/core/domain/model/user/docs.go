// Package user contains the User aggregate: an account holding a set of marketplace roles and
// exactly one active role. The active role decides which dashboard, order scope and transition
// rights apply to every request the user makes.
package user
