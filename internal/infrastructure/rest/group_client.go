package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
	"github.com/comite-ambiental/consola-admin/internal/core/ports"
)

const groupPath = "/api/group"

// GroupClient implements ports.GroupClient against /api/group.
type GroupClient struct {
	*Client
}

func NewGroupClient(c *Client) *GroupClient {
	return &GroupClient{Client: c}
}

// groupRequest is the backend's group wire shape. Member references travel
// as `{"id": n}` objects, never bare ids.
type groupRequest struct {
	ID        int              `json:"id,omitempty"`
	Name      string           `json:"name"`
	Municipio string           `json:"municipio"`
	Colonia   string           `json:"colonia"`
	Users     []domain.UserRef `json:"users"`
}

func toGroupRequest(id int, input ports.GroupInput) groupRequest {
	users := make([]domain.UserRef, len(input.SelectedUsers))
	for i, userID := range input.SelectedUsers {
		users[i] = domain.UserRef{ID: userID}
	}
	return groupRequest{
		ID:        id,
		Name:      input.Name,
		Municipio: input.Municipio,
		Colonia:   input.Colonia,
		Users:     users,
	}
}

func (c *GroupClient) List(ctx context.Context) ([]domain.Group, error) {
	p, err := c.do(ctx, http.MethodGet, groupPath, nil, nil)
	if err != nil {
		return nil, err
	}
	var groups []domain.Group
	decodeList(c.Client, p, &groups)
	return groups, nil
}

func (c *GroupClient) GetByID(ctx context.Context, id int) (*domain.Group, error) {
	p, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", groupPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	var group domain.Group
	if err := decodeOne(p, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *GroupClient) Create(ctx context.Context, input ports.GroupInput) (*domain.Group, error) {
	p, err := c.do(ctx, http.MethodPost, groupPath, nil, toGroupRequest(0, input))
	if err != nil {
		return nil, err
	}
	var group domain.Group
	if err := decodeOne(p, &group); err != nil {
		return nil, nil // acknowledged without an echo; caller reloads
	}
	return &group, nil
}

// Update sends the full group on the collection path; the backend routes
// updates by the id in the body, not the URL.
func (c *GroupClient) Update(ctx context.Context, id int, input ports.GroupInput) (*domain.Group, error) {
	p, err := c.do(ctx, http.MethodPut, groupPath, nil, toGroupRequest(id, input))
	if err != nil {
		return nil, err
	}
	var group domain.Group
	if err := decodeOne(p, &group); err != nil {
		return nil, nil
	}
	return &group, nil
}

// Delete removes a group. The backend expects at least the id in the request
// body, again on the collection path.
func (c *GroupClient) Delete(ctx context.Context, id int) (*ports.MutationResult, error) {
	body := struct {
		ID int `json:"id"`
	}{ID: id}
	p, err := c.do(ctx, http.MethodDelete, groupPath, nil, body)
	if err != nil {
		return nil, err
	}
	return p.result(), nil
}
