package config

import (
	"os"
	"time"
)

// Server settings
var (
	ServerPort        = getEnv("PORT", "8080")
	DatabaseURL       = getEnv("DATABASE_URL", "templesale.db")
	JWTSecret         = getEnv("JWT_SECRET", "dev-secret-change-me")
	ServerUploadLimit = 10 * 1024 * 1024
)

const (
	ServerRateLimitMax = 120
	ServerRateLimitExp = 1 * time.Minute

	// ServerRedirectDelay is the time to wait before redirecting the user
	// after a successful action.
	ServerRedirectDelay = 1 * time.Second
)

// Map settings
const (
	// MapNeighborhoodZoom is used when centering on the first geo-tagged
	// listing; MapFallbackZoom when no listing carries coordinates.
	MapNeighborhoodZoom = 15
	MapFallbackZoom     = 11

	// Fallback map center (São Paulo) when no listing has coordinates.
	MapFallbackLat = -23.5505
	MapFallbackLon = -46.6333

	// MinDrawDistance is the minimum |dLat|+|dLon| between consecutive
	// freehand stroke points. Keeps high-frequency pointer streams bounded.
	MinDrawDistance = 0.0001

	// DrawSnapshotInterval throttles externally visible draw-state updates.
	// The authoritative point buffer is never throttled.
	DrawSnapshotInterval = 80 * time.Millisecond

	// DrawSessionTTL evicts abandoned drawing sessions.
	DrawSessionTTL = 30 * time.Minute
)

// TileProviders are tried in order. The first provider that serves a tile
// becomes sticky for the process lifetime.
var TileProviders = []string{
	getEnv("TILE_PROXY_URL", "https://tiles.templesale.com/%d/%d/%d.png"),
	"https://tile.openstreetmap.org/%d/%d/%d.png",
	"https://a.basemaps.cartocdn.com/rastertiles/voyager/%d/%d/%d.png",
	"https://tile.openstreetmap.de/%d/%d/%d.png",
}

const (
	// TileTimeout is the per-provider load timeout raced against the
	// provider's own error response.
	TileTimeout = 1400 * time.Millisecond

	TileCacheTTL = 12 * time.Hour
)

// Frontend CDN assets loaded directly by the browser
const (
	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4"
	HTMXURL        = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
)

// Map library CDN assets, mirrored once per process and served same-origin.
var (
	MapLibScriptURL       = getEnv("MAP_LIB_SCRIPT_URL", "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js")
	MapLibStylesheetURL   = getEnv("MAP_LIB_STYLESHEET_URL", "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css")
	MapLibMarkerIconURL   = getEnv("MAP_LIB_MARKER_ICON_URL", "https://unpkg.com/leaflet@1.9.4/dist/images/marker-icon.png")
	MapLibMarkerShadowURL = getEnv("MAP_LIB_MARKER_SHADOW_URL", "https://unpkg.com/leaflet@1.9.4/dist/images/marker-shadow.png")
)

// Image storage (B2) settings
var (
	B2MasterKeyID = os.Getenv("B2_MASTER_KEY_ID")
	B2KeyID       = os.Getenv("B2_KEY_ID")
	B2AppKey      = os.Getenv("B2_APP_KEY")
	B2BucketID    = os.Getenv("B2_BUCKET_ID")
	B2BucketName  = getEnv("B2_BUCKET_NAME", "templesale-images")

	B2FileServerURL = getEnv("B2_FILE_SERVER_URL", "https://images.templesale.com/file/templesale")
)

const (
	B2AuthEndpoint         = "https://api.backblazeb2.com/b2api/v2/b2_authorize_account"
	B2DownloadAuthEndpoint = "/b2api/v2/b2_get_download_authorization"
	B2DownloadTokenExpiry  = 3600
)

// Twilio settings for phone verification
var (
	TwilioAccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	TwilioAuthToken  = os.Getenv("TWILIO_AUTH_TOKEN")
	TwilioFromNumber = os.Getenv("TWILIO_FROM_NUMBER")
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
