// Package service holds the use cases the HTTP layer dispatches to.
//
// The use cases themselves are supplied by the host application; this
// package only groups them so the handler layer receives one value.
package service
