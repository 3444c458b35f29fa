package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"oci_kiosk/dto"
	"oci_kiosk/model"
)

// Client is a thin typed wrapper over the kiosk content API.
type Client struct {
	base string
	http *http.Client
}

func NewClient(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

func (c *Client) FetchHome(ctx context.Context) (dto.HomeResponse, error) {
	var home dto.HomeResponse
	err := c.getJSON(ctx, "/api/home", &home)
	return home, err
}

func (c *Client) FetchTree(ctx context.Context) ([]*model.Node, error) {
	var tree []*model.Node
	err := c.getJSON(ctx, "/api/nodes/tree", &tree)
	return tree, err
}

func (c *Client) FetchAgendas(ctx context.Context) ([]model.Agenda, error) {
	var agendas []model.Agenda
	err := c.getJSON(ctx, "/api/agenda", &agendas)
	return agendas, err
}

func (c *Client) FetchActiveAgenda(ctx context.Context) (dto.ActiveAgendaResponse, error) {
	var active dto.ActiveAgendaResponse
	err := c.getJSON(ctx, "/api/agenda/active", &active)
	return active, err
}

// FetchPlayingVVIP returns nil with no error when no VVIP is playing (the
// endpoint answers JSON null).
func (c *Client) FetchPlayingVVIP(ctx context.Context) (*model.VVIP, error) {
	var vvip *model.VVIP
	if err := c.getJSON(ctx, "/api/vvips/playing", &vvip); err != nil {
		return nil, err
	}
	return vvip, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return nil
}
