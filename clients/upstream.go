package clients

import "fmt"

// UpstreamError is returned when a peer service answers with a non-success
// status. The remote status code and raw body are preserved so the caller can
// relay them instead of inventing its own failure.
type UpstreamError struct {
	Service    string
	URL        string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s failed with statusCode:%d, Url:%s", e.Service, e.StatusCode, e.URL)
}
