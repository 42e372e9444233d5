// Package cli parses the multregt command line into a Config.
package cli
