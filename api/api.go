// Package api holds the OpenAPI description of the freight HTTP API.
// The server stubs under internal/generated/servers are generated from it.
package api

import _ "embed"

//go:embed openapi.yaml
var OpenAPI []byte
