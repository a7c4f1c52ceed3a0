package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
	"github.com/comite-ambiental/consola-admin/internal/core/ports"
)

type stubEventClient struct {
	events    []domain.Event
	statusErr error

	deletedTitle  string
	statusTitle   string
	statusCreator string
	statusValue   domain.EventStatus
}

func (c *stubEventClient) List(context.Context) ([]domain.Event, error) { return c.events, nil }
func (c *stubEventClient) Upcoming(context.Context) ([]domain.Event, error) {
	return c.events, nil
}
func (c *stubEventClient) ByStatus(context.Context, domain.EventStatus) ([]domain.Event, error) {
	return c.events, nil
}
func (c *stubEventClient) ByCreator(context.Context, string) ([]domain.Event, error) {
	return c.events, nil
}
func (c *stubEventClient) ByType(context.Context, string) ([]domain.Event, error) {
	return c.events, nil
}
func (c *stubEventClient) MyEvents(context.Context) ([]domain.Event, error) { return c.events, nil }

func (c *stubEventClient) Find(context.Context, string, string) (*domain.Event, error) {
	return nil, nil
}

func (c *stubEventClient) Create(_ context.Context, input ports.EventInput) (*domain.Event, error) {
	return &domain.Event{ID: 99, Title: input.Title, Status: domain.StatusUpcoming}, nil
}

func (c *stubEventClient) Update(context.Context, int, ports.EventInput) (*domain.Event, error) {
	return nil, nil
}

func (c *stubEventClient) UpdateStatus(_ context.Context, title, creator string, status domain.EventStatus) (*ports.MutationResult, error) {
	if c.statusErr != nil {
		return nil, c.statusErr
	}
	c.statusTitle, c.statusCreator, c.statusValue = title, creator, status
	return &ports.MutationResult{Status: 200, Message: "ok"}, nil
}

func (c *stubEventClient) Delete(_ context.Context, title, _ string) (*ports.MutationResult, error) {
	c.deletedTitle = title
	return &ports.MutationResult{Status: 200, Message: "ok"}, nil
}

func newEventsScreen(sess ports.Session, client ports.EventClient) (*EventsScreen, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewEventsScreen(sess, client, NewFormValidator(), out, zerolog.Nop()), out
}

func sampleEvents() []domain.Event {
	return []domain.Event{
		{ID: 1, Title: "Reforestación", CreatorUsername: "maria", EventType: "Plantación", Status: domain.StatusUpcoming},
		{ID: 2, Title: "Limpieza de río", CreatorUsername: "pedro", EventType: "Limpieza", Status: domain.StatusInProgress},
	}
}

func TestEventsScreen_ListRequiresLogin(t *testing.T) {
	screen, out := newEventsScreen(&stubSession{ready: true}, &stubEventClient{})

	err := screen.List(context.Background(), EventListOptions{})
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if !strings.Contains(out.String(), "Acceso Denegado") {
		t.Fatalf("expected denial message, got %q", out.String())
	}
}

func TestEventsScreen_MemberCanListButNotManage(t *testing.T) {
	sess := &stubSession{ready: true, loggedIn: true, role: domain.RoleMember}
	screen, out := newEventsScreen(sess, &stubEventClient{events: sampleEvents()})

	if err := screen.List(context.Background(), EventListOptions{}); err != nil {
		t.Fatalf("member should list events: %v", err)
	}
	if !strings.Contains(out.String(), "Reforestación") {
		t.Fatalf("expected listing, got %q", out.String())
	}

	err := screen.Delete(context.Background(), "Reforestación", "maria")
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("member must not delete events, got %v", err)
	}
}

func TestEventsScreen_ListAppliesLocalFilters(t *testing.T) {
	sess := &stubSession{ready: true, loggedIn: true, role: domain.RoleMember}
	screen, out := newEventsScreen(sess, &stubEventClient{events: sampleEvents()})

	opts := EventListOptions{Status: domain.StatusInProgress, Search: "río"}
	if err := screen.List(context.Background(), opts); err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.Contains(out.String(), "Reforestación") {
		t.Fatalf("filtered-out event rendered: %q", out.String())
	}
	if !strings.Contains(out.String(), "Limpieza de río") {
		t.Fatalf("matching event missing: %q", out.String())
	}
}

func TestEventsScreen_SetStatusPatchesLocally(t *testing.T) {
	sess := &stubSession{ready: true, loggedIn: true, role: domain.RoleAdminGroup}
	client := &stubEventClient{events: sampleEvents()}
	screen, _ := newEventsScreen(sess, client)

	err := screen.SetStatus(context.Background(), "Reforestación", "maria", domain.StatusFinished)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if client.statusTitle != "Reforestación" || client.statusCreator != "maria" || client.statusValue != domain.StatusFinished {
		t.Fatalf("unexpected backend call %q %q %q", client.statusTitle, client.statusCreator, client.statusValue)
	}

	for _, e := range screen.store.Items() {
		if e.Title == "Reforestación" && e.Status != domain.StatusFinished {
			t.Fatalf("local record not patched: %+v", e)
		}
		if e.Title == "Limpieza de río" && e.Status != domain.StatusInProgress {
			t.Fatalf("unrelated record touched: %+v", e)
		}
	}
}

func TestEventsScreen_SetStatusRejectsUnknownStatus(t *testing.T) {
	sess := &stubSession{ready: true, loggedIn: true, role: domain.RoleAdmin}
	screen, _ := newEventsScreen(sess, &stubEventClient{events: sampleEvents()})

	err := screen.SetStatus(context.Background(), "Reforestación", "maria", "CANCELADO")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestEventsScreen_SetStatusFailureLeavesCollection(t *testing.T) {
	sess := &stubSession{ready: true, loggedIn: true, role: domain.RoleAdmin}
	client := &stubEventClient{events: sampleEvents(), statusErr: &domain.RequestError{StatusCode: 500}}
	screen, _ := newEventsScreen(sess, client)

	if err := screen.SetStatus(context.Background(), "Reforestación", "maria", domain.StatusFinished); err == nil {
		t.Fatalf("expected backend error")
	}
	for _, e := range screen.store.Items() {
		if e.Title == "Reforestación" && e.Status != domain.StatusUpcoming {
			t.Fatalf("failed mutation must not patch local state: %+v", e)
		}
	}
}

func TestEventsScreen_DeleteRemovesLocally(t *testing.T) {
	sess := &stubSession{ready: true, loggedIn: true, role: domain.RoleAdmin}
	client := &stubEventClient{events: sampleEvents()}
	screen, _ := newEventsScreen(sess, client)

	if err := screen.Delete(context.Background(), "Reforestación", "maria"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if client.deletedTitle != "Reforestación" {
		t.Fatalf("backend not called")
	}
	if screen.store.Len() != 1 {
		t.Fatalf("expected N-1 records, got %d", screen.store.Len())
	}
	for _, e := range screen.store.Items() {
		if e.SameEvent(domain.Event{Title: "Reforestación", CreatorUsername: "maria"}) {
			t.Fatalf("deleted event still present")
		}
	}
}

func TestEventsScreen_CreateValidatesForm(t *testing.T) {
	sess := &stubSession{ready: true, loggedIn: true, role: domain.RoleAdmin}
	screen, out := newEventsScreen(sess, &stubEventClient{events: sampleEvents()})

	err := screen.Create(context.Background(), EventForm{Title: "", TypeName: "Limpieza", Date: time.Now()})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(out.String(), "obligatorio") {
		t.Fatalf("expected field message, got %q", out.String())
	}
}

func TestEventsScreen_CreateAppendsEcho(t *testing.T) {
	sess := &stubSession{ready: true, loggedIn: true, role: domain.RoleAdmin}
	screen, _ := newEventsScreen(sess, &stubEventClient{events: sampleEvents()})

	form := EventForm{Title: "Taller de composta", TypeName: "Taller", Date: time.Date(2026, 11, 5, 10, 0, 0, 0, time.UTC)}
	if err := screen.Create(context.Background(), form); err != nil {
		t.Fatalf("create: %v", err)
	}
	if screen.store.Len() != 3 {
		t.Fatalf("echoed event not appended, len=%d", screen.store.Len())
	}
}
