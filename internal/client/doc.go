// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the offline store daemon runtime.
//
// It opens a data store for every configured collection, syncs them once at
// start-up and then keeps them in sync in the background until the process
// is asked to stop.
package client
