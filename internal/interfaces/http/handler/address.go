package handler

import (
	"errors"
	"net/http"

	appaddress "github.com/crm/backend/internal/application/address"
	"github.com/crm/backend/internal/domain/address"
	"github.com/crm/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// AddressHandler exposes the postal-code lookup used by the entry forms
type AddressHandler struct {
	BaseHandler
	resolver *appaddress.Resolver
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(resolver *appaddress.Resolver) *AddressHandler {
	return &AddressHandler{resolver: resolver}
}

// RegisterRoutes registers the address routes
func (h *AddressHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/address/:code", h.Resolve)
}

// Resolve looks up a postal code. The optional field query parameter
// names the form field the lookup belongs to, so that concurrent
// lookups for distinct fields do not cancel each other.
func (h *AddressHandler) Resolve(c *gin.Context) {
	field := c.DefaultQuery("field", "postal_code")

	resolved, err := h.resolver.Resolve(c.Request.Context(), field, c.Param("code"))
	if err != nil {
		h.LookupError(c, err)
		return
	}
	if resolved == nil {
		h.BadRequest(c, "Postal code is incomplete")
		return
	}
	h.Success(c, resolved)
}

// LookupError maps address lookup failures onto HTTP responses: an
// unknown code is the caller's 404, while timeouts and network errors
// surface as upstream failures. A superseded lookup produces an empty
// response the screen discards.
func (h *BaseHandler) LookupError(c *gin.Context, err error) {
	if errors.Is(err, appaddress.ErrSuperseded) {
		h.NoContent(c)
		return
	}
	var lookupErr *address.LookupError
	if errors.As(err, &lookupErr) {
		switch lookupErr.Kind {
		case address.LookupNotFound:
			h.NotFound(c, lookupErr.Message)
		case address.LookupTimeout:
			c.JSON(http.StatusGatewayTimeout, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeInternal, lookupErr.Message, getRequestID(c)))
		default:
			c.JSON(http.StatusBadGateway, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeInternal, lookupErr.Message, getRequestID(c)))
		}
		return
	}
	h.HandleError(c, err)
}
