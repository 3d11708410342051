package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-offline-store/internal/adapter"
	"github.com/MKhiriev/go-offline-store/models"
)

// fakeBackend is an in-memory collection service. Every write advances a
// logical clock that doubles as the delta-set marker.
type fakeBackend struct {
	mu sync.Mutex

	clock    int
	nextID   int
	entities map[string]map[string]fakeRecord
	deleted  map[string]map[string]int
	// oldestMarker is the oldest "since" value accepted by delta requests.
	oldestMarker int

	failures map[string][]error
	calls    []string
	// writes lists the ids written through the gateway, in order.
	writes []string
}

type fakeRecord struct {
	entity   models.Entity
	modified int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		entities: make(map[string]map[string]fakeRecord),
		deleted:  make(map[string]map[string]int),
		failures: make(map[string][]error),
	}
}

// failNext makes the next calls of method fail with errs, in order.
func (b *fakeBackend) failNext(method string, errs ...error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method] = append(b.failures[method], errs...)
}

func (b *fakeBackend) callCount(method string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		if c == method {
			n++
		}
	}
	return n
}

func (b *fakeBackend) writtenIDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.writes...)
}

func (b *fakeBackend) totalCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

// enter records the call and returns an injected failure, if any. b.mu must be held.
func (b *fakeBackend) enter(method string) error {
	b.calls = append(b.calls, method)
	if queued := b.failures[method]; len(queued) > 0 {
		b.failures[method] = queued[1:]
		return queued[0]
	}
	return nil
}

func (b *fakeBackend) collection(name string) map[string]fakeRecord {
	if b.entities[name] == nil {
		b.entities[name] = make(map[string]fakeRecord)
		b.deleted[name] = make(map[string]int)
	}
	return b.entities[name]
}

func (b *fakeBackend) stamp(collection string, e models.Entity) models.Entity {
	b.clock++
	e = e.Clone()
	ts := fmt.Sprintf("2026-01-01T00:00:%02d.000Z", b.clock%60)
	if e.Metadata.EntityCreated == "" {
		e.Metadata.EntityCreated = ts
	}
	e.Metadata.LastModified = ts
	b.collection(collection)[e.ID] = fakeRecord{entity: e, modified: b.clock}
	delete(b.deleted[collection], e.ID)
	return e.Clone()
}

// put stores e directly, as if another client had written it.
func (b *fakeBackend) put(collection string, e models.Entity) models.Entity {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stamp(collection, e)
}

// remove deletes id directly, as if another client had deleted it.
func (b *fakeBackend) remove(collection, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clock++
	delete(b.collection(collection), id)
	b.deleted[collection][id] = b.clock
}

func (b *fakeBackend) get(collection, id string) (models.Entity, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.collection(collection)[id]
	return r.entity.Clone(), ok
}

func (b *fakeBackend) size(collection string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.collection(collection))
}

func (b *fakeBackend) Create(_ context.Context, collection string, entity models.Entity) (models.Entity, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.enter("Create"); err != nil {
		return models.Entity{}, err
	}
	if entity.ID == "" || entity.HasTempID() {
		b.nextID++
		entity.ID = "srv-" + strconv.Itoa(b.nextID)
	}
	b.writes = append(b.writes, entity.ID)
	return b.stamp(collection, entity), nil
}

func (b *fakeBackend) Update(_ context.Context, collection, id string, entity models.Entity) (models.Entity, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.enter("Update"); err != nil {
		return models.Entity{}, err
	}
	entity.ID = id
	b.writes = append(b.writes, id)
	return b.stamp(collection, entity), nil
}

func (b *fakeBackend) Delete(_ context.Context, collection, id string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.enter("Delete"); err != nil {
		return 0, err
	}
	b.writes = append(b.writes, id)
	if _, ok := b.collection(collection)[id]; !ok {
		return 0, notFound()
	}
	b.clock++
	delete(b.entities[collection], id)
	b.deleted[collection][id] = b.clock
	return 1, nil
}

func (b *fakeBackend) Query(_ context.Context, collection string, query *models.Query) (models.QueryResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.enter("Query"); err != nil {
		return models.QueryResponse{}, err
	}

	out := make([]models.Entity, 0)
	for _, r := range b.collection(collection) {
		if query.Match(r.entity) {
			out = append(out, r.entity.Clone())
		}
	}
	if query != nil && query.Limit > 0 && len(out) > query.Limit {
		out = out[:query.Limit]
	}
	return models.QueryResponse{Entities: out, ServerMarker: strconv.Itoa(b.clock)}, nil
}

func (b *fakeBackend) QueryDelta(_ context.Context, collection string, query *models.Query, since string) (models.QueryResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.enter("QueryDelta"); err != nil {
		return models.QueryResponse{}, err
	}

	marker, err := strconv.Atoi(since)
	if err != nil || marker < b.oldestMarker {
		return models.QueryResponse{}, &adapter.NetworkError{
			Kind:       adapter.KindPermanent,
			StatusCode: http.StatusBadRequest,
			Err:        fmt.Errorf("%w: %w", adapter.ErrDeltaMarkerExpired, adapter.ErrBadRequest),
		}
	}

	resp := models.QueryResponse{Entities: []models.Entity{}, DeletedIDs: []string{}, ServerMarker: strconv.Itoa(b.clock)}
	for _, r := range b.collection(collection) {
		if r.modified > marker && query.Match(r.entity) {
			resp.Entities = append(resp.Entities, r.entity.Clone())
		}
	}
	for id, at := range b.deleted[collection] {
		if at > marker {
			resp.DeletedIDs = append(resp.DeletedIDs, id)
		}
	}
	return resp, nil
}

func transient() error {
	return &adapter.NetworkError{Kind: adapter.KindTransient, StatusCode: http.StatusServiceUnavailable, Err: adapter.ErrServiceUnavailable}
}

func permanent() error {
	return &adapter.NetworkError{Kind: adapter.KindPermanent, StatusCode: http.StatusBadRequest, Err: adapter.ErrBadRequest}
}

func authExpired() error {
	return &adapter.NetworkError{Kind: adapter.KindAuthExpired, StatusCode: http.StatusUnauthorized, Err: adapter.ErrUnauthorized}
}

func notFound() error {
	return &adapter.NetworkError{Kind: adapter.KindPermanent, StatusCode: http.StatusNotFound, Err: adapter.ErrNotFound}
}

// countingAuth is an AuthProvider whose refreshes can be made to fail.
type countingAuth struct {
	mu         sync.Mutex
	refreshes  int
	refreshErr error
}

func (a *countingAuth) Token(context.Context) (string, error) { return "tok", nil }

func (a *countingAuth) Refresh(context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.refreshes++
	return "tok", a.refreshErr
}
