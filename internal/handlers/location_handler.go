package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/land-broker/internal/httperr"
	"github.com/BruksfildServices01/land-broker/internal/httpresp"
	locationuc "github.com/BruksfildServices01/land-broker/internal/usecase/location"
)

type LocationHandler struct {
	search *locationuc.SearchLocations
	create *locationuc.CreateLocation
}

func NewLocationHandler(
	search *locationuc.SearchLocations,
	create *locationuc.CreateLocation,
) *LocationHandler {
	return &LocationHandler{search: search, create: create}
}

type LocationRequest struct {
	Name string `json:"name"`
}

func (h *LocationHandler) List(c *gin.Context) {
	locs, err := h.search.Execute(c.Request.Context(), c.Query("search"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, locs)
}

func (h *LocationHandler) Create(c *gin.Context) {
	var req LocationRequest
	// A body that does not decode is handled like an empty name.
	_ = c.ShouldBindJSON(&req)

	loc, err := h.create.Execute(c.Request.Context(), req.Name)
	if err != nil {
		switch httperr.CodeOf(err) {
		case httperr.CodeValidation:
			httperr.RespondWithMessage(c, err, "Location name is required")
		case httperr.CodeConflict:
			httperr.RespondWithMessage(c, err, "Location with this name already exists")
		default:
			httperr.Respond(c, err)
		}
		return
	}

	httpresp.Created(c, loc)
}
