package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
	"github.com/comite-ambiental/consola-admin/internal/core/ports"
)

const typesPath = "/api/types"

// TypeClient implements ports.TypeClient against /api/types.
type TypeClient struct {
	*Client
}

func NewTypeClient(c *Client) *TypeClient {
	return &TypeClient{Client: c}
}

func (c *TypeClient) List(ctx context.Context) ([]domain.EventType, error) {
	p, err := c.do(ctx, http.MethodGet, typesPath, nil, nil)
	if err != nil {
		return nil, err
	}
	var types []domain.EventType
	decodeList(c.Client, p, &types)
	return types, nil
}

func (c *TypeClient) GetByID(ctx context.Context, id int) (*domain.EventType, error) {
	return c.getOne(ctx, fmt.Sprintf("%s/%d", typesPath, id))
}

func (c *TypeClient) GetByName(ctx context.Context, name string) (*domain.EventType, error) {
	return c.getOne(ctx, typesPath+"/name/"+url.PathEscape(name))
}

func (c *TypeClient) getOne(ctx context.Context, path string) (*domain.EventType, error) {
	p, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	var t domain.EventType
	if err := decodeOne(p, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *TypeClient) Create(ctx context.Context, input ports.TypeInput) (*domain.EventType, error) {
	body := struct {
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	}{Name: input.Name, Description: input.Description}
	p, err := c.do(ctx, http.MethodPost, typesPath, nil, body)
	if err != nil {
		return nil, err
	}
	var t domain.EventType
	if err := decodeOne(p, &t); err != nil {
		return nil, nil // acknowledged without an echo; caller reloads
	}
	return &t, nil
}
