package client

import (
	"encoding/json"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/batthud/batthud/pkg/hud"
)

// GetStatus returns the overlay's current display snapshot.
func (c *Client) GetStatus() (*hud.Snapshot, error) {
	ret, err := c.Get("/status")
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to get overlay status")
	}
	var snap hud.Snapshot
	if err := json.Unmarshal([]byte(ret), &snap); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to unmarshal overlay status")
	}
	return &snap, nil
}

// GetTransparency returns the level 0-100 where 100 is fully opaque.
func (c *Client) GetTransparency() (int, error) {
	ret, err := c.Get("/transparency")
	if err != nil {
		return 0, pkgerrors.Wrap(err, "failed to get transparency")
	}
	return parseIntResponse(ret)
}

// SetTransparency sets the level 0-100 where 100 is fully opaque.
func (c *Client) SetTransparency(t int) (string, error) {
	return c.Put("/transparency", strconv.Itoa(t))
}

// GetVersion returns the overlay's version.
func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrap(err, "failed to get version")
	}
	return strings.Trim(strings.TrimSpace(ret), `"`), nil
}

func parseIntResponse(ret string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(ret))
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "failed to parse response %q", ret)
	}
	return v, nil
}
