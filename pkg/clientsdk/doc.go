/*
Package clientsdk is a typed Go client for the clientbook HTTP API.

Create an SDKClient and call the resource methods:

	c := clientsdk.NewSDKClient("http://localhost:8080")

	created, err := c.CreateClient(ctx, clientsdk.Client{
		Name:      "Ana Paula",
		Cpf:       "41412414142124",
		Income:    1354.0,
		BirthDate: time.Date(1994, 11, 5, 7, 0, 0, 0, time.UTC),
		Children:  4,
	})

	page, err := c.ListClients(ctx, clientsdk.PageParams{LinesPerPage: 20, OrderBy: "income", Direction: "DESC"})

Every non-success response is returned as an *APIError carrying the HTTP
status and the error code written by the server:

	if _, err := c.GetClient(ctx, 42); clientsdk.IsNotFound(err) {
		// no client 42
	}

The wire types in this package are also what the server encodes, so the
two sides cannot drift apart.
*/
package clientsdk
