// Package handler contains the HTTP handlers for the person API.
package handler

import (
	"fmt"
	"log/slog"
	"strconv"

	"personapi/internal/delivery/api/response"
	"personapi/internal/delivery/api/validator"
	"personapi/internal/domain/entity"
	domainerrors "personapi/internal/domain/errors"
	"personapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PersonHandlerParams holds dependencies for PersonHandler, injected by Fx.
type PersonHandlerParams struct {
	fx.In

	PersonUC usecase.PersonUsecase
	Logger   *slog.Logger
}

// PersonHandler holds dependencies for person-related handlers
type PersonHandler struct {
	personUC usecase.PersonUsecase
	logger   *slog.Logger
}

// NewPersonHandler is the constructor for PersonHandler
func NewPersonHandler(params PersonHandlerParams) *PersonHandler {
	return &PersonHandler{
		personUC: params.PersonUC,
		logger:   params.Logger,
	}
}

// CreatePersonRequest represents the request body for creating a person.
// An "id" in the body is not bound.
type CreatePersonRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// UpdatePersonRequest represents the request body for updating a person.
// Omitted names keep their stored value.
type UpdatePersonRequest struct {
	FirstName string `json:"firstName" validate:"required_without=LastName"`
	LastName  string `json:"lastName" validate:"required_without=FirstName"`
}

// BatchFieldError locates a rejected field inside a batch request.
type BatchFieldError struct {
	Index int `json:"index"`
	validator.FieldError
}

// CreatePerson handles POST /persons/person
func (h *PersonHandler) CreatePerson(c echo.Context) error {
	var req CreatePersonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid person input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, validator.FieldErrors(err))
	}

	person, err := h.personUC.CreatePerson(c.Request().Context(), req.toPerson())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, person)
}

// CreatePersons handles POST /persons/batch
func (h *PersonHandler) CreatePersons(c echo.Context) error {
	var reqs []CreatePersonRequest
	if err := c.Bind(&reqs); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid person batch input")
	}

	if len(reqs) == 0 {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "At least one person is required")
	}

	var details []BatchFieldError
	candidates := make([]*entity.Person, 0, len(reqs))
	for i := range reqs {
		if err := c.Validate(&reqs[i]); err != nil {
			for _, fieldErr := range validator.FieldErrors(err) {
				details = append(details, BatchFieldError{Index: i, FieldError: fieldErr})
			}

			continue
		}
		candidates = append(candidates, reqs[i].toPerson())
	}
	if len(details) > 0 {
		return validationFailed(c, details)
	}

	persons, err := h.personUC.CreatePersons(c.Request().Context(), candidates)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, persons)
}

// GetPerson handles GET /persons/person/:id
func (h *PersonHandler) GetPerson(c echo.Context) error {
	id, ok := parsePersonID(c)
	if !ok {
		return invalidID(c)
	}

	person, err := h.personUC.GetPerson(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, person)
}

// UpdatePerson handles PUT /persons/person/:id
func (h *PersonHandler) UpdatePerson(c echo.Context) error {
	id, ok := parsePersonID(c)
	if !ok {
		return invalidID(c)
	}

	var req UpdatePersonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid person input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, validator.FieldErrors(err))
	}

	person, err := h.personUC.UpdatePerson(c.Request().Context(), &entity.Person{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, person)
}

// DeletePerson handles DELETE /persons/person/:id and returns the removed record.
func (h *PersonHandler) DeletePerson(c echo.Context) error {
	id, ok := parsePersonID(c)
	if !ok {
		return invalidID(c)
	}

	person, err := h.personUC.DeletePerson(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, person)
}

// CountPersons handles GET /persons/count
func (h *PersonHandler) CountPersons(c echo.Context) error {
	count, err := h.personUC.CountPersons(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, count)
}

// ListPersons handles GET /persons
func (h *PersonHandler) ListPersons(c echo.Context) error {
	persons, err := h.personUC.ListPersons(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, persons)
}

func (r CreatePersonRequest) toPerson() *entity.Person {
	return &entity.Person{
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// parsePersonID accepts only positive decimal ids.
func parsePersonID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

func invalidID(c echo.Context) error {
	return response.BadRequestWithDetails(c, "INVALID_ID", "Person id must be a positive integer",
		fmt.Sprintf("%q is not a valid person id.", c.Param("id")))
}

func validationFailed(c echo.Context, details any) error {
	return response.BadRequestWithDetails(c,
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(),
		details,
	)
}
