package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/clientbook/internal/clients/domain"
	"github.com/aussiebroadwan/clientbook/internal/clients/service"
	"github.com/aussiebroadwan/clientbook/internal/clients/store"
	"github.com/aussiebroadwan/clientbook/pkg/clientsdk"
	"github.com/aussiebroadwan/clientbook/pkg/httpx"
	"github.com/aussiebroadwan/clientbook/pkg/slogx"
)

// ClientsHandler serves the /clients resource.
type ClientsHandler struct {
	ClientService *service.ClientService
}

// HandleList handles GET /clients
//
//	@Summary		List clients
//	@Description	Returns one page of all clients.
//	@Tags			Clients
//	@Produce		json
//	@Param			page			query		int						false	"Zero based page index"		default(0)
//	@Param			linesPerPage	query		int						false	"Page size (max 100)"		default(12)
//	@Param			direction		query		string					false	"Sort direction"			Enums(ASC, DESC)	default(ASC)
//	@Param			orderBy			query		string					false	"Sort property"				Enums(id, name, cpf, income, birthDate, children)	default(name)
//	@Success		200				{object}	clientsdk.Page			"page of clients"
//	@Failure		400				{object}	clientsdk.APIError		"error, error_description"
//	@Failure		500				{object}	clientsdk.APIError		"error, error_description"
//	@Router			/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageRequest(r.URL.Query())
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	page, err := h.ClientService.FindAllPaged(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWirePage(page))
}

// HandleListByIncome handles GET /clients/incomeGreaterThan
//
//	@Summary		List clients by income
//	@Description	Returns one page of the clients whose income is strictly greater than the given value.
//	@Tags			Clients
//	@Produce		json
//	@Param			income			query		number					true	"Exclusive lower income bound"
//	@Param			page			query		int						false	"Zero based page index"		default(0)
//	@Param			linesPerPage	query		int						false	"Page size (max 100)"		default(12)
//	@Param			direction		query		string					false	"Sort direction"			Enums(ASC, DESC)	default(ASC)
//	@Param			orderBy			query		string					false	"Sort property"				default(name)
//	@Success		200				{object}	clientsdk.Page			"page of clients"
//	@Failure		400				{object}	clientsdk.APIError		"error, error_description"
//	@Failure		500				{object}	clientsdk.APIError		"error, error_description"
//	@Router			/clients/incomeGreaterThan [get].
func (h *ClientsHandler) HandleListByIncome(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	income, err := parseIncome(q)
	if err != nil {
		writeBadRequest(w, err)
		return
	}
	req, err := parsePageRequest(q)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	page, err := h.ClientService.FindByIncomeGreaterThan(r.Context(), req, income)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWirePage(page))
}

// HandleGet handles GET /clients/{id}
//
//	@Summary		Get client
//	@Tags			Clients
//	@Produce		json
//	@Param			id	path		int					true	"Client id"
//	@Success		200	{object}	clientsdk.Client	"client"
//	@Failure		400	{object}	clientsdk.APIError	"error, error_description"
//	@Failure		404	{object}	clientsdk.APIError	"error, error_description"
//	@Router			/clients/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	dto, err := h.ClientService.FindByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clientsdk.Client(dto))
}

// HandleCreate handles POST /clients
//
//	@Summary		Create client
//	@Description	Stores a new client. Any id in the body is ignored.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clientsdk.Client	true	"client"
//	@Success		201		{object}	clientsdk.Client	"created client with its id"
//	@Header			201		{string}	Location			"/clients/{id}"
//	@Failure		400		{object}	clientsdk.APIError	"error, error_description"
//	@Failure		500		{object}	clientsdk.APIError	"error, error_description"
//	@Router			/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in clientsdk.Client
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		clientsdk.ErrInvalidBody.WriteError(w)
		return
	}

	dto, err := h.ClientService.Insert(r.Context(), domain.ClientDTO(in))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", "/clients/"+strconv.FormatInt(dto.ID, 10))
	httpx.WriteJSON(w, http.StatusCreated, clientsdk.Client(dto))
}

// HandleUpdate handles PUT /clients/{id}
//
//	@Summary		Update client
//	@Description	Replaces every field of the client. The id in the path wins over any id in the body.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Client id"
//	@Param			request	body		clientsdk.Client	true	"new field values"
//	@Success		200		{object}	clientsdk.Client	"updated client"
//	@Failure		400		{object}	clientsdk.APIError	"error, error_description"
//	@Failure		404		{object}	clientsdk.APIError	"error, error_description"
//	@Router			/clients/{id} [put].
func (h *ClientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	var in clientsdk.Client
	if err := httpx.DecodeJSON(w, r, &in); err != nil {
		clientsdk.ErrInvalidBody.WriteError(w)
		return
	}

	dto, err := h.ClientService.Update(r.Context(), id, domain.ClientDTO(in))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clientsdk.Client(dto))
}

// HandleDelete handles DELETE /clients/{id}
//
//	@Summary	Delete client
//	@Tags		Clients
//	@Param		id	path	int	true	"Client id"
//	@Success	204	"deleted"
//	@Failure	400	{object}	clientsdk.APIError	"error, error_description"
//	@Failure	404	{object}	clientsdk.APIError	"error, error_description"
//	@Router		/clients/{id} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	if err := h.ClientService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeBadRequest(w http.ResponseWriter, err error) {
	clientsdk.NewAPIError(http.StatusBadRequest, clientsdk.ErrorCodeInvalidRequest, err.Error()).WriteError(w)
}

// writeServiceError maps a service error onto a response. Only unexpected
// failures are logged, their details stay out of the body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		clientsdk.NewAPIError(http.StatusNotFound, clientsdk.ErrorCodeClientNotFound, err.Error()).WriteError(w)
	case errors.Is(err, store.ErrInvalidSort), errors.Is(err, store.ErrInvalidPage):
		writeBadRequest(w, err)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		clientsdk.ErrServerError.WriteError(w)
	}
}

func toWirePage(p domain.Page[domain.ClientDTO]) clientsdk.Page {
	content := make([]clientsdk.Client, len(p.Content))
	for i, dto := range p.Content {
		content[i] = clientsdk.Client(dto)
	}

	sort := make([]clientsdk.SortOrder, len(p.Request.Sort))
	for i, o := range p.Request.Sort {
		sort[i] = clientsdk.SortOrder{Property: o.Property, Direction: string(o.Direction)}
	}

	return clientsdk.Page{
		Content:          content,
		Number:           p.Request.Page,
		Size:             p.Request.Size,
		TotalElements:    p.TotalElements,
		TotalPages:       p.TotalPages(),
		NumberOfElements: p.NumberOfElements(),
		First:            p.IsFirst(),
		Last:             p.IsLast(),
		Empty:            p.IsEmpty(),
		Sort:             sort,
	}
}
