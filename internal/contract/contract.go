// Package contract has shared configuration and helper contracts used by
// the core engine, the writers and the CLI.
package contract
