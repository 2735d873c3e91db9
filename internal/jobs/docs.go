// Package jobs runs the marketplace background work on robfig/cron schedules (six fields,
// seconds first): the outbox relay that publishes order events and the purge of stale carts.
//
// A failed run is logged and the schedule continues. The relay leaves unpublished events in
// the outbox, so the next tick picks them up again.
package jobs
