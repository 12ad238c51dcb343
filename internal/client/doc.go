// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the session lifecycle, the sync engine, and the background
// workers into a single process lifecycle.
package client
