// Package http implements the node service's HTTP transport.
//
// The host graph registers the upload node from GET /api/nodes and executes
// it through POST /api/upload. Request tracing, access logging and panic
// recovery are handled here before requests reach the service layer. Each
// upload gets its own status recorder so that the status lines printed during
// the run are returned to the caller with the report.
package http
