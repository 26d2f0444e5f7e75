package clientsdk

import (
	"context"
	"net/http"
	"strconv"
)

// GetClient fetches the client with id.
func (c *SDKClient) GetClient(ctx context.Context, id int64) (*Client, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/clients/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}

	var out Client
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListClients fetches one page of all clients.
func (c *SDKClient) ListClients(ctx context.Context, params PageParams) (*Page, error) {
	path := "/clients"
	if q := params.values().Encode(); q != "" {
		path += "?" + q
	}
	return c.listPage(ctx, path)
}

// ListClientsByIncome fetches one page of the clients whose income is
// strictly greater than income.
func (c *SDKClient) ListClientsByIncome(ctx context.Context, income float64, params PageParams) (*Page, error) {
	q := params.values()
	q.Set("income", strconv.FormatFloat(income, 'f', -1, 64))
	return c.listPage(ctx, "/clients/incomeGreaterThan?"+q.Encode())
}

func (c *SDKClient) listPage(ctx context.Context, path string) (*Page, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var page Page
	if err := decodeJSON(resp, &page, http.StatusOK); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateClient stores in as a new client and returns it with its assigned
// id. in.ID is ignored by the server.
func (c *SDKClient) CreateClient(ctx context.Context, in Client) (*Client, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/clients", in)
	if err != nil {
		return nil, err
	}

	var out Client
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClient replaces every field of client id with those of in.
func (c *SDKClient) UpdateClient(ctx context.Context, id int64, in Client) (*Client, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/clients/"+strconv.FormatInt(id, 10), in)
	if err != nil {
		return nil, err
	}

	var out Client
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteClient removes client id.
func (c *SDKClient) DeleteClient(ctx context.Context, id int64) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/clients/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
