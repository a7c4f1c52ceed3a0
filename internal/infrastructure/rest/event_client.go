package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
	"github.com/comite-ambiental/consola-admin/internal/core/ports"
)

const eventsPath = "/api/events"

// EventClient implements ports.EventClient against /api/events.
type EventClient struct {
	*Client
}

func NewEventClient(c *Client) *EventClient {
	return &EventClient{Client: c}
}

// eventRequest is the backend's event wire shape: the type travels by name
// and the date as RFC 3339.
type eventRequest struct {
	Title       string `json:"title"`
	EventDate   string `json:"eventDate"`
	EventType   string `json:"eventType"`
	Description string `json:"description"`
}

func toEventRequest(input ports.EventInput) eventRequest {
	return eventRequest{
		Title:       input.Title,
		EventDate:   input.EventDate.UTC().Format(time.RFC3339),
		EventType:   input.EventType,
		Description: input.Description,
	}
}

func (c *EventClient) List(ctx context.Context) ([]domain.Event, error) {
	return c.listAt(ctx, eventsPath)
}

func (c *EventClient) Upcoming(ctx context.Context) ([]domain.Event, error) {
	return c.listAt(ctx, eventsPath+"/upcoming")
}

func (c *EventClient) ByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	return c.listAt(ctx, eventsPath+"/status/"+url.PathEscape(string(status)))
}

func (c *EventClient) ByCreator(ctx context.Context, username string) ([]domain.Event, error) {
	return c.listAt(ctx, eventsPath+"/creator/"+url.PathEscape(username))
}

func (c *EventClient) ByType(ctx context.Context, typeName string) ([]domain.Event, error) {
	return c.listAt(ctx, eventsPath+"/type/"+url.PathEscape(typeName))
}

func (c *EventClient) MyEvents(ctx context.Context) ([]domain.Event, error) {
	return c.listAt(ctx, eventsPath+"/my-events")
}

func (c *EventClient) listAt(ctx context.Context, path string) ([]domain.Event, error) {
	p, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	var events []domain.Event
	decodeList(c.Client, p, &events)
	return events, nil
}

func (c *EventClient) Find(ctx context.Context, title, creator string) (*domain.Event, error) {
	query := url.Values{}
	query.Set("title", title)
	query.Set("creatorUsername", creator)
	p, err := c.do(ctx, http.MethodGet, eventsPath+"/find", query, nil)
	if err != nil {
		return nil, err
	}
	var event domain.Event
	if err := decodeOne(p, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *EventClient) Create(ctx context.Context, input ports.EventInput) (*domain.Event, error) {
	p, err := c.do(ctx, http.MethodPost, eventsPath, nil, toEventRequest(input))
	if err != nil {
		return nil, err
	}
	var event domain.Event
	if err := decodeOne(p, &event); err != nil {
		return nil, nil // acknowledged without an echo; caller reloads
	}
	return &event, nil
}

func (c *EventClient) Update(ctx context.Context, id int, input ports.EventInput) (*domain.Event, error) {
	p, err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", eventsPath, id), nil, toEventRequest(input))
	if err != nil {
		return nil, err
	}
	var event domain.Event
	if err := decodeOne(p, &event); err != nil {
		return nil, nil
	}
	return &event, nil
}

// UpdateStatus changes an event's status. The endpoint addresses the event
// by {title, creatorUsername} query parameters and often replies with an
// empty body, for which the base client synthesizes the acknowledgment.
func (c *EventClient) UpdateStatus(ctx context.Context, title, creator string, status domain.EventStatus) (*ports.MutationResult, error) {
	query := url.Values{}
	query.Set("title", title)
	query.Set("creatorUsername", creator)
	body := struct {
		Status domain.EventStatus `json:"status"`
	}{Status: status}
	p, err := c.do(ctx, http.MethodPut, eventsPath+"/update-status", query, body)
	if err != nil {
		return nil, err
	}
	return p.result(), nil
}

// Delete removes an event addressed by {title, creatorUsername}.
func (c *EventClient) Delete(ctx context.Context, title, creator string) (*ports.MutationResult, error) {
	query := url.Values{}
	query.Set("title", title)
	query.Set("creatorUsername", creator)
	p, err := c.do(ctx, http.MethodDelete, eventsPath+"/delete", query, nil)
	if err != nil {
		return nil, err
	}
	return p.result(), nil
}
