// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package notify provides a small in-process notification bus.
// Publishers emit events of a named kind and every handler subscribed to that
// kind is invoked synchronously, on the publishing goroutine.
package notify
