package main

import (
	"bytes"
	"context"
	"fmt"
	json "github.com/bytedance/sonic"
	"golang.org/x/sync/singleflight"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"
)

const FirebaseUrlTemplate = "https://%s-default-rtdb.europe-west1.firebasedatabase.app"

const firebaseRequestTimeout = time.Second * 4

// FirebaseCellStore talks to the Firebase Realtime Database REST API.
// Cells live under /cells/<id>.json as {"formula": "..."}.
type FirebaseCellStore struct {
	baseUrl string
	client  *http.Client
	lookups singleflight.Group
}

type firebaseCell struct {
	Formula string `json:"formula"`
}

func NewFirebaseCellStore(baseUrl string, client *http.Client) *FirebaseCellStore {
	if client == nil {
		client = &http.Client{
			Timeout: firebaseRequestTimeout,
		}
	}

	return &FirebaseCellStore{
		baseUrl: baseUrl,
		client:  client,
	}
}

func FirebaseBaseUrl(databaseName string) string {
	return fmt.Sprintf(FirebaseUrlTemplate, databaseName)
}

// Lookup shares one request between concurrent lookups of the same cell.
// The shared request outlives any single caller's cancellation; each caller
// still stops waiting when its own context is done.
func (s *FirebaseCellStore) Lookup(ctx context.Context, cellId string) (string, bool, error) {
	results := s.lookups.DoChan(cellId, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), firebaseRequestTimeout)
		defer cancel()
		return s.fetch(fetchCtx, cellId)
	})

	var result singleflight.Result
	select {
	case <-ctx.Done():
		return "", false, wrapStorageError("lookup "+cellId, ctx.Err())
	case result = <-results:
	}

	if result.Err != nil {
		return "", false, result.Err
	}

	cell := result.Val.(*firebaseCell)
	if cell == nil {
		return "", false, nil
	}

	return cell.Formula, true, nil
}

func (s *FirebaseCellStore) Put(ctx context.Context, cellId string, formula string) (bool, error) {
	existing, err := s.fetch(ctx, cellId)
	if err != nil {
		return false, err
	}

	err = s.do(ctx, http.MethodPut, s.cellUrl(cellId), &firebaseCell{Formula: formula}, nil)
	if err != nil {
		return false, err
	}

	return existing == nil, nil
}

func (s *FirebaseCellStore) Delete(ctx context.Context, cellId string) error {
	existing, err := s.fetch(ctx, cellId)
	if err != nil {
		return err
	}
	if existing == nil {
		return cellNotFound(cellId)
	}

	return s.do(ctx, http.MethodDelete, s.cellUrl(cellId), nil, nil)
}

func (s *FirebaseCellStore) List(ctx context.Context) ([]string, error) {
	var cells map[string]any
	err := s.do(ctx, http.MethodGet, s.baseUrl+"/cells.json?shallow=true", nil, &cells)
	if err != nil {
		return nil, err
	}

	cellIds := make([]string, 0, len(cells))
	for cellId := range cells {
		cellIds = append(cellIds, cellId)
	}
	sort.Strings(cellIds)

	return cellIds, nil
}

func (s *FirebaseCellStore) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

func (s *FirebaseCellStore) cellUrl(cellId string) string {
	return s.baseUrl + "/cells/" + url.PathEscape(cellId) + ".json"
}

// fetch returns nil without error when the cell does not exist (firebase answers `null`).
func (s *FirebaseCellStore) fetch(ctx context.Context, cellId string) (*firebaseCell, error) {
	var cell *firebaseCell
	err := s.do(ctx, http.MethodGet, s.cellUrl(cellId), nil, &cell)
	return cell, err
}

func (s *FirebaseCellStore) do(ctx context.Context, method string, requestUrl string, payload any, output any) error {
	operation := method + " " + requestUrl

	var body io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return wrapStorageError(operation, err)
		}
		body = bytes.NewReader(payloadBytes)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestUrl, body)
	if err != nil {
		return wrapStorageError(operation, err)
	}
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := s.client.Do(request)
	if err != nil {
		return wrapStorageError(operation, err)
	}
	defer response.Body.Close()

	if response.StatusCode >= 300 {
		return wrapStorageError(operation, fmt.Errorf("unexpected HTTP status: %s", response.Status))
	}

	if output == nil {
		return nil
	}

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return wrapStorageError(operation, err)
	}

	if err = json.Unmarshal(responseBody, output); err != nil {
		return wrapStorageError(operation, err)
	}

	return nil
}
