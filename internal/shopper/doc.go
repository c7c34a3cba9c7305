// Package shopper tracks the storefronts served by the HTTP API, one per
// shopper id.
//
// The registry map is guarded by a read-write mutex; each shopper's
// storefront is guarded by its own mutex so that shoppers never wait on one
// another. Creation and release are published to the event bus after the
// registry lock is dropped.
package shopper
