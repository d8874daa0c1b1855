// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package site implements the static site program.
// It serves a handful of HTML pages sharing a menu fragment, a stylesheet and
// an empty favicon, reading every file from disk at request time. Notable
// events are published on a notify.Bus and recorded by a logging subscriber.
package site
