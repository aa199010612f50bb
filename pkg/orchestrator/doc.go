// Package orchestrator wires the catalog loader, form session and renderer
// registry into a single request/response entry point for callers that want
// rendered output without driving a form controller themselves.
package orchestrator
