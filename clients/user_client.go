package clients

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/go-resty/resty/v2"
)

// UserProjection is the user shape the User Directory Service exposes.
// Passwords never appear here.
type UserProjection struct {
	UserID   uint   `json:"userId"`
	Name     string `json:"name"`
	RoleName string `json:"roleName"`
}

// UserClient is the Course Catalog Service's typed view of the User Directory
// Service. Calls are single-attempt; failures surface as *UpstreamError.
type UserClient struct {
	http *resty.Client
}

func NewUserClient(baseURL string) *UserClient {
	return &UserClient{http: resty.New().SetBaseURL(baseURL)}
}

// GetUser fetches a user projection by id.
func (uc *UserClient) GetUser(ctx context.Context, userID uint) (*UserProjection, error) {
	path := fmt.Sprintf("/api/v1/users/%d", userID)

	var user UserProjection
	resp, err := uc.http.R().
		SetContext(ctx).
		SetResult(&user).
		Get(path)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		upstreamErr := &UpstreamError{
			Service:    "UserService",
			URL:        path,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
		log.Printf("UserService call failed: %v", upstreamErr)
		return nil, upstreamErr
	}

	return &user, nil
}

// GetUserByName resolves a display name (not the login name) to a user
// projection via the directory's search endpoint.
func (uc *UserClient) GetUserByName(ctx context.Context, name string) (*UserProjection, error) {
	path := "/api/v1/users/search?name=" + url.QueryEscape(name)

	var user UserProjection
	resp, err := uc.http.R().
		SetContext(ctx).
		SetResult(&user).
		Get(path)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		upstreamErr := &UpstreamError{
			Service:    "UserService",
			URL:        path,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
		log.Printf("UserService call failed: %v", upstreamErr)
		return nil, upstreamErr
	}

	return &user, nil
}
