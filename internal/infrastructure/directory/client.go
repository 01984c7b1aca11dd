// Package directory - HTTP клиенты справочников CEP для address.Resolver.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"courierdesk/internal/domain/address"

	"github.com/gregjones/httpcache"
)

const (
	userAgent    = "courierdesk/1.0"
	maxBodyBytes = 64 << 10
)

// NewCachingHTTPClient возвращает http.Client поверх httpcache в памяти.
// Ответы обоих справочников по одному CEP кэшируются.
func NewCachingHTTPClient() *http.Client {
	cache := httpcache.NewMemoryCacheTransport()
	cache.Transport = &http.Transport{
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
	}
	return cache.Client()
}

// getJSON выполняет GET и разбирает JSON в out. Код ответа возвращается,
// чтобы отличать "не найдено" от недоступности.
func getJSON(ctx context.Context, client *http.Client, url string, out interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", address.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return resp.StatusCode, fmt.Errorf("%w: status %d", address.ErrUnavailable, resp.StatusCode)
	}

	// Читаем тело целиком: httpcache сохраняет ответ только по EOF.
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: read body: %v", address.ErrUnavailable, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		if resp.StatusCode == http.StatusNotFound {
			return resp.StatusCode, address.ErrNotFound
		}
		return resp.StatusCode, fmt.Errorf("decode %s response: %w", url, err)
	}

	return resp.StatusCode, nil
}

func joinURL(base string, parts ...string) string {
	return strings.TrimRight(base, "/") + "/" + strings.Join(parts, "/")
}
