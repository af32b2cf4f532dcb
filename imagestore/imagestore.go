package imagestore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/GuilhermeTebaldi/templesale2-sub001/cache"
	"github.com/GuilhermeTebaldi/templesale2-sub001/config"
)

var tokenCache *cache.Cache[string]

// Init initializes the download token cache. This should be called during
// application startup; if it fails the application should exit.
func Init() error {
	var err error
	tokenCache, err = cache.New[string](func(value string) int64 {
		return int64(len(value))
	}, "B2 Token Cache")
	return err
}

// DownloadTokenForPrefix returns a cached B2 download authorization token
// for a listing's image directory prefix (e.g. "22/").
func DownloadTokenForPrefix(prefix string) (string, error) {
	if token, found := tokenCache.Get(prefix); found {
		return token, nil
	}
	token, err := fetchDownloadToken(prefix)
	if err != nil {
		return "", err
	}
	// Cache for slightly less than the token lifetime so we refresh
	// before B2 rejects it.
	ttl := time.Duration(config.B2DownloadTokenExpiry-600) * time.Second
	tokenCache.SetWithTTL(prefix, token, int64(len(token)), ttl)
	return token, nil
}

// SignedImageURL builds a signed URL for one image of a listing. Returns
// an empty string when image storage is not configured.
func SignedImageURL(listingID, idx int, size string) string {
	token, err := DownloadTokenForPrefix(fmt.Sprintf("%d/", listingID))
	if err != nil || token == "" {
		return ""
	}
	return fmt.Sprintf("%s/%d/%d-%s.webp?Authorization=%s",
		config.B2FileServerURL, listingID, idx, size, token)
}

// CacheStats returns token cache statistics for admin monitoring
func CacheStats() map[string]interface{} {
	stats := tokenCache.Stats()
	stats["b2_token_ttl_seconds"] = config.B2DownloadTokenExpiry
	stats["b2_cache_ttl_seconds"] = config.B2DownloadTokenExpiry - 600
	return stats
}

// ClearCache clears all cached tokens
func ClearCache() {
	tokenCache.Clear()
}

func fetchDownloadToken(prefix string) (string, error) {
	accountID := config.B2MasterKeyID
	keyID := config.B2KeyID
	appKey := config.B2AppKey
	bucketID := config.B2BucketID
	if accountID == "" || appKey == "" || keyID == "" || bucketID == "" {
		return "", fmt.Errorf("B2 credentials not set")
	}

	req, _ := http.NewRequest("GET", config.B2AuthEndpoint, nil)
	req.SetBasicAuth(keyID, appKey)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("B2 auth error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("B2 auth failed: %s", resp.Status)
	}
	var authResp struct {
		APIURL    string `json:"apiUrl"`
		AuthToken string `json:"authorizationToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		return "", fmt.Errorf("B2 auth decode error: %w", err)
	}

	body, _ := json.Marshal(map[string]interface{}{
		"bucketId":               bucketID,
		"fileNamePrefix":         prefix,
		"validDurationInSeconds": int64(config.B2DownloadTokenExpiry),
	})
	req2, _ := http.NewRequest("POST", authResp.APIURL+config.B2DownloadAuthEndpoint, bytes.NewReader(body))
	req2.Header.Set("Authorization", authResp.AuthToken)
	req2.Header.Set("Content-Type", "application/json")
	resp2, err := http.DefaultClient.Do(req2)
	if err != nil {
		return "", fmt.Errorf("B2 get_download_authorization error: %w", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		return "", fmt.Errorf("B2 get_download_authorization failed: %s", resp2.Status)
	}
	var tokenResp struct {
		AuthorizationToken string `json:"authorizationToken"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("B2 token decode error: %w", err)
	}
	return tokenResp.AuthorizationToken, nil
}
