// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// tool-suite shell handlers, the dev proxy and the operator CLI.
//
// All Msg* constants are human-readable message strings written into HTTP
// error bodies or printed by toolctl. Keeping them in one place ensures
// consistent wording.
package app

const (
	// AppName is the role label of every logger and the CLI name prefix.
	AppName = "tool-suite"

	// MsgBackendUnreachable is returned by the dev proxy when the tools
	// backend cannot be reached.
	MsgBackendUnreachable = "backend unreachable"

	// MsgNoRoute is the prefix of the 404 body of the shell.
	MsgNoRoute = "no route for"

	// MsgMethodNotAllowed is the suffix of the 405 body of the shell.
	MsgMethodNotAllowed = "check the proxy and CORS setup"

	// MsgBackendHint is printed by toolctl when the backend cannot be
	// reached.
	MsgBackendHint = "make sure the backend server is running at the base URL"
)
