// Package handler is the first layer after the router.
//
// It decodes request bodies, hands them to the controllers, and writes the
// controllers' responses back through Echo.
package handler
