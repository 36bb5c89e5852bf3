// Package history persists capture runs in a local SQLite database so
// past captures can be listed and inspected without re-parsing logs.
package history
