// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive vault application runtime.
//
// It wires the encrypted vault file, the system clipboard and the terminal
// UI into a single session controller and runs it for the process lifetime.
package client
