// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the backend collection service.
//
// The primary abstraction is [NetworkGateway], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPNetworkGateway]) and a bearer token source ([NewTokenSource]) that
// implements [AuthProvider].
//
// Failures are reported as [*NetworkError] values whose [Kind] tells callers
// whether to retry later, drop the request or refresh credentials. The
// sentinel values defined in errors.go stay reachable through [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-offline-store/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/network_gateway_mock.go -package=mock

// NetworkGateway issues CRUD and query calls against a backend collection
// endpoint. Every error it returns is a [*NetworkError].
type NetworkGateway interface {
	// Create stores a new entity. Any temporary id on entity is stripped so
	// that the backend assigns the permanent one. Returns the entity as
	// stored by the backend.
	Create(ctx context.Context, collection string, entity models.Entity) (models.Entity, error)

	// Update replaces the entity identified by id and returns the stored
	// version.
	Update(ctx context.Context, collection, id string, entity models.Entity) (models.Entity, error)

	// Delete removes the entity identified by id and returns the number of
	// entities the backend removed.
	Delete(ctx context.Context, collection, id string) (int, error)

	// Query returns every entity matching query. A nil query fetches the
	// whole collection. ServerMarker of the response can seed a later
	// QueryDelta call.
	Query(ctx context.Context, collection string, query *models.Query) (models.QueryResponse, error)

	// QueryDelta returns only the entities changed and the ids deleted since
	// the server marker since. Returns a [*NetworkError] wrapping
	// [ErrDeltaMarkerExpired] when the backend no longer accepts since.
	QueryDelta(ctx context.Context, collection string, query *models.Query, since string) (models.QueryResponse, error)
}

// AuthProvider supplies bearer credentials for backend requests.
type AuthProvider interface {
	// Token returns the current bearer token. Returns [ErrTokenExpired] when
	// the token is known to be expired and must be refreshed first.
	Token(ctx context.Context) (string, error)

	// Refresh obtains a new token, stores it for later Token calls and
	// returns it.
	Refresh(ctx context.Context) (string, error)
}
