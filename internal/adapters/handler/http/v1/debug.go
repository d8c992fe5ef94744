package v1

import (
	"net/http"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DebugHandler exposes the series cache for inspection. Wired only when
// Redis is up; not meant for production traffic.
type DebugHandler struct {
	redisClient *redis.Client
}

func NewDebugHandler(redisClient *redis.Client) *DebugHandler {
	return &DebugHandler{redisClient: redisClient}
}

// GetCacheKeys handles GET /debug/cache/keys
func (h *DebugHandler) GetCacheKeys(w http.ResponseWriter, r *http.Request) {
	if h.redisClient == nil {
		writeErrorResponse(w, http.StatusServiceUnavailable, "cache not available")
		return
	}

	keys, err := h.redisClient.Keys(r.Context(), "series:*").Result()
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "failed to list cache keys: "+err.Error())
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"keys":  keys,
		"count": len(keys),
	})
}

// GetCachedSeries handles GET /debug/cache/series/{symbol}
func (h *DebugHandler) GetCachedSeries(w http.ResponseWriter, r *http.Request) {
	if h.redisClient == nil {
		writeErrorResponse(w, http.StatusServiceUnavailable, "cache not available")
		return
	}

	symbol := strings.ToUpper(r.PathValue("symbol"))
	keys, err := h.redisClient.Keys(r.Context(), "series:"+symbol+":*").Result()
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "failed to list cache keys: "+err.Error())
		return
	}

	entries := make(map[string]int64, len(keys))
	for _, key := range keys {
		ttl, err := h.redisClient.TTL(r.Context(), key).Result()
		if err != nil {
			continue
		}
		entries[key] = int64(ttl.Seconds())
	}

	writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"symbol":  symbol,
		"entries": entries,
	})
}
