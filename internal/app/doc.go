// Package app wires configuration, logging and HTTP routes for the rulekit
// server.
package app
