// Package cases tracks incidents (operational problems) and claims (client
// complaints). Both carry their own closed status enum with transition checks.
package cases
