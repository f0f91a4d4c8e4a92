package clients

import (
	"context"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

// CourseClient is the User Directory Service's typed view of the Course
// Catalog Service, used by the enrollment workflow.
type CourseClient struct {
	http *resty.Client
}

func NewCourseClient(baseURL string) *CourseClient {
	return &CourseClient{http: resty.New().SetBaseURL(baseURL)}
}

// Enroll forwards an enrollment to the catalog's enroll endpoint. The caller's
// original Authorization header is passed through unmodified so the catalog
// applies its own gate against the same credential. The upstream success body
// is returned verbatim for the controller to relay.
func (cc *CourseClient) Enroll(ctx context.Context, courseID, studentID uint, authorization string) ([]byte, error) {
	path := fmt.Sprintf("/api/v1/courses/%d/enroll", courseID)

	req := cc.http.R().
		SetContext(ctx).
		SetBody(map[string]uint{"studentId": studentID})
	if authorization != "" {
		req.SetHeader("Authorization", authorization)
	}

	resp, err := req.Post(path)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		upstreamErr := &UpstreamError{
			Service:    "CourseService",
			URL:        path,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
		log.Printf("CourseService call failed: %v", upstreamErr)
		return nil, upstreamErr
	}

	log.Printf("CourseService Api call successful, Url:%s", path)
	return resp.Body(), nil
}
