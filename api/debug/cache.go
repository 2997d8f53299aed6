package debug

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (drm *DebugRoutesManager) ClearCache(w http.ResponseWriter, r *http.Request) {
	err := drm.cacheService.ClearAll()
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to clear cache"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Cache cleared"),
		gecho.Send(),
	)
}

func (drm *DebugRoutesManager) CacheStats(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(drm.cacheService.GetConnectionStats()),
		gecho.Send(),
	)
}

// RateLimitStatus reports the current counter for an ip/endpoint pair
func (drm *DebugRoutesManager) RateLimitStatus(w http.ResponseWriter, r *http.Request) {
	ip := r.URL.Query().Get("ip")
	endpoint := r.URL.Query().Get("endpoint")
	if ip == "" || endpoint == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("ip and endpoint query parameters are required"),
			gecho.Send(),
		)
		return
	}

	status, err := drm.cacheService.GetRateLimitStatus(ip, endpoint)
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to read rate limit status"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(status),
		gecho.Send(),
	)
}
