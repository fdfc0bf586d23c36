// SPDX-License-Identifier: Apache-2.0

// Package client implements the catalog application runtime.
//
// It wires the storage layer, services, and background backup job into a
// single process lifecycle.
package client
