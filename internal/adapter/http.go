package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-offline-store/internal/config"
	"github.com/MKhiriev/go-offline-store/internal/logger"
	"github.com/MKhiriev/go-offline-store/internal/utils"
	"github.com/MKhiriev/go-offline-store/models"
)

const (
	collectionPath = "/appdata/{appKey}/{collection}"
	entityPath     = "/appdata/{appKey}/{collection}/{id}"
	deltaSetPath   = "/appdata/{appKey}/{collection}/_deltaset"

	// requestStartHeader carries the backend clock at the moment it started
	// serving the request. It is the marker for the next delta-set request.
	requestStartHeader = "X-Kinvey-Request-Start"
)

type httpGateway struct {
	client *utils.HTTPClient
	appKey string
	auth   AuthProvider

	logger *logger.Logger
}

// deleteResponse is the body of a successful DELETE.
type deleteResponse struct {
	Count int `json:"count"`
}

// deltaSetResponse is the body of a successful delta-set request.
type deltaSetResponse struct {
	Changed []models.Entity `json:"changed"`
	Deleted []struct {
		ID string `json:"_id"`
	} `json:"deleted"`
	LastRequestTime string `json:"lastRequestTime,omitempty"`
}

// NewHTTPNetworkGateway constructs an HTTP/REST implementation of
// [NetworkGateway]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. auth may be nil for backends that
// do not require credentials.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPNetworkGateway(adapterCfg config.ClientAdapter, auth AuthProvider, logger *logger.Logger) (NetworkGateway, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpGateway{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		appKey: adapterCfg.AppKey,
		auth:   auth,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Create implements [NetworkGateway]. It POSTs the entity to the collection
// endpoint without its temporary id and returns the backend copy.
func (h *httpGateway) Create(ctx context.Context, collection string, entity models.Entity) (models.Entity, error) {
	body := entity.Clone()
	if body.HasTempID() {
		body.ID = ""
	}

	req, err := h.authedRequest(ctx, collection)
	if err != nil {
		return models.Entity{}, err
	}
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(collectionPath)
	if err != nil {
		return models.Entity{}, mapTransportError("create request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure(err, "httpGateway.Create", collection, entity.ID)
		return models.Entity{}, err
	}

	var created models.Entity
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Entity{}, mapDecodeError("decode create response", resp, err)
	}
	return created, nil
}

// Update implements [NetworkGateway]. It PUTs the entity to the entity
// endpoint and returns the backend copy.
func (h *httpGateway) Update(ctx context.Context, collection, id string, entity models.Entity) (models.Entity, error) {
	body := entity.Clone()
	body.ID = id

	req, err := h.authedRequest(ctx, collection)
	if err != nil {
		return models.Entity{}, err
	}
	resp, err := req.
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(entityPath)
	if err != nil {
		return models.Entity{}, mapTransportError("update request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure(err, "httpGateway.Update", collection, id)
		return models.Entity{}, err
	}

	var updated models.Entity
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Entity{}, mapDecodeError("decode update response", resp, err)
	}
	return updated, nil
}

// Delete implements [NetworkGateway]. An empty 2xx body counts as one
// deleted entity.
func (h *httpGateway) Delete(ctx context.Context, collection, id string) (int, error) {
	req, err := h.authedRequest(ctx, collection)
	if err != nil {
		return 0, err
	}
	resp, err := req.
		SetPathParam("id", id).
		Delete(entityPath)
	if err != nil {
		return 0, mapTransportError("delete request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure(err, "httpGateway.Delete", collection, id)
		return 0, err
	}

	if len(resp.Body()) == 0 {
		return 1, nil
	}
	var deleted deleteResponse
	if err = json.Unmarshal(resp.Body(), &deleted); err != nil {
		return 0, mapDecodeError("decode delete response", resp, err)
	}
	return deleted.Count, nil
}

// Query implements [NetworkGateway]. It GETs the collection endpoint with the
// serialised query and takes the server marker from the request-start header.
func (h *httpGateway) Query(ctx context.Context, collection string, query *models.Query) (models.QueryResponse, error) {
	params, err := queryParams(query)
	if err != nil {
		return models.QueryResponse{}, &NetworkError{Kind: KindPermanent, Err: fmt.Errorf("%w: %w", ErrBadRequest, err)}
	}

	req, err := h.authedRequest(ctx, collection)
	if err != nil {
		return models.QueryResponse{}, err
	}
	resp, err := req.
		SetQueryParams(params).
		Get(collectionPath)
	if err != nil {
		return models.QueryResponse{}, mapTransportError("query request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure(err, "httpGateway.Query", collection, "")
		return models.QueryResponse{}, err
	}

	var entities []models.Entity
	if err = json.Unmarshal(resp.Body(), &entities); err != nil {
		return models.QueryResponse{}, mapDecodeError("decode query response", resp, err)
	}

	return models.QueryResponse{
		Entities:     entities,
		ServerMarker: resp.Header().Get(requestStartHeader),
	}, nil
}

// QueryDelta implements [NetworkGateway]. Sort and paging of query are not
// sent; a delta set is never windowed.
func (h *httpGateway) QueryDelta(ctx context.Context, collection string, query *models.Query, since string) (models.QueryResponse, error) {
	params, err := queryParams(query.FilterOnly())
	if err != nil {
		return models.QueryResponse{}, &NetworkError{Kind: KindPermanent, Err: fmt.Errorf("%w: %w", ErrBadRequest, err)}
	}
	params["since"] = since

	req, err := h.authedRequest(ctx, collection)
	if err != nil {
		return models.QueryResponse{}, err
	}
	resp, err := req.
		SetQueryParams(params).
		Get(deltaSetPath)
	if err != nil {
		return models.QueryResponse{}, mapTransportError("delta set request", err)
	}
	if err = mapDeltaError(resp); err != nil {
		h.logFailure(err, "httpGateway.QueryDelta", collection, "")
		return models.QueryResponse{}, err
	}

	var delta deltaSetResponse
	if err = json.Unmarshal(resp.Body(), &delta); err != nil {
		return models.QueryResponse{}, mapDecodeError("decode delta set response", resp, err)
	}

	result := models.QueryResponse{
		Entities:     delta.Changed,
		DeletedIDs:   make([]string, 0, len(delta.Deleted)),
		ServerMarker: resp.Header().Get(requestStartHeader),
	}
	for _, d := range delta.Deleted {
		result.DeletedIDs = append(result.DeletedIDs, d.ID)
	}
	if result.ServerMarker == "" {
		result.ServerMarker = delta.LastRequestTime
	}
	return result, nil
}

// authedRequest prepares a request for collection carrying the current bearer
// token. A token the provider already knows to be expired is reported as
// [KindAuthExpired] without contacting the backend.
func (h *httpGateway) authedRequest(ctx context.Context, collection string) (*resty.Request, error) {
	req := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"appKey": h.appKey, "collection": collection})

	if h.auth == nil {
		return req, nil
	}

	token, err := h.auth.Token(ctx)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return nil, &NetworkError{Kind: KindAuthExpired, Err: err}
		}
		return nil, &NetworkError{Kind: KindTransient, Err: fmt.Errorf("obtain token: %w", err)}
	}
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (h *httpGateway) logFailure(err error, fn, collection, id string) {
	h.logger.Debug().Err(err).
		Str("func", fn).
		Str("collection", collection).
		Str("entity_id", id).
		Msg("backend request failed")
}
