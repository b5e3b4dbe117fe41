package shelf

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Astemirdum/shelfshare/web/internal/errs"
	"github.com/Astemirdum/shelfshare/web/internal/lifecycle"
	"github.com/Astemirdum/shelfshare/web/internal/model"
)

func (s *Service) CreateRequest(ctx context.Context, req model.CreateRequestRequest) (model.Request, int, error) {
	c, err := jsonCall("CreateRequest", http.MethodPost, "/request", req)
	if err != nil {
		return model.Request{}, http.StatusBadRequest, err
	}
	var body model.GetRequest
	_, code, err := s.do(ctx, c, &body)
	if err != nil {
		return model.Request{}, code, err
	}
	if code != http.StatusCreated {
		return model.Request{}, code, &errs.UpstreamError{Status: code, Message: "Failed to send request"}
	}
	return body.Data, code, nil
}

func (s *Service) requests(ctx context.Context, name, path string) ([]model.Request, int, error) {
	var list model.ListRequests
	_, code, err := s.do(ctx, call{name: name, method: http.MethodGet, path: path}, &list)
	return list.Data, code, err
}

func (s *Service) SentRequests(ctx context.Context) ([]model.Request, int, error) {
	return s.requests(ctx, "SentRequests", "/request/sent")
}

func (s *Service) ReceivedRequests(ctx context.Context) ([]model.Request, int, error) {
	return s.requests(ctx, "ReceivedRequests", "/request/received")
}

// ActOnRequest sends PUT /request/{id}/{action}; legality is the API's call.
func (s *Service) ActOnRequest(ctx context.Context, id string, action lifecycle.Action) (int, error) {
	_, code, err := s.do(ctx, call{
		name:   "ActOnRequest",
		method: http.MethodPut,
		path:   "/request/" + url.PathEscape(id) + "/" + string(action),
	}, nil)
	return code, err
}
