package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/land-broker/internal/domain/land"
	"github.com/BruksfildServices01/land-broker/internal/dto"
	"github.com/BruksfildServices01/land-broker/internal/httperr"
	"github.com/BruksfildServices01/land-broker/internal/httpresp"
	landuc "github.com/BruksfildServices01/land-broker/internal/usecase/land"
)

type LandHandler struct {
	list   *landuc.ListLands
	get    *landuc.GetLand
	create *landuc.CreateLand
	update *landuc.UpdateLand
	delete *landuc.DeleteLand
}

func NewLandHandler(
	list *landuc.ListLands,
	get *landuc.GetLand,
	create *landuc.CreateLand,
	update *landuc.UpdateLand,
	remove *landuc.DeleteLand,
) *LandHandler {
	return &LandHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		delete: remove,
	}
}

// ======================================================
// REQUEST
// ======================================================

// LandRequest has no pricePerArea: clients cannot set it.
type LandRequest struct {
	FullName     string  `json:"fullName"`
	MobileNo     string  `json:"mobileNo"`
	LocationID   string  `json:"locationId"`
	LocationName string  `json:"locationName"`
	LandArea     float64 `json:"landArea"`
	LandAreaUnit string  `json:"landAreaUnit"`
	Type         string  `json:"type"`
	TotalPrice   float64 `json:"totalPrice"`
}

func (r LandRequest) input() domain.Input {
	return domain.Input{
		FullName:     r.FullName,
		MobileNo:     r.MobileNo,
		LocationID:   r.LocationID,
		LocationName: r.LocationName,
		LandArea:     r.LandArea,
		LandAreaUnit: r.LandAreaUnit,
		Type:         r.Type,
		TotalPrice:   r.TotalPrice,
	}
}

const msgLandNotFound = "Land not found"

// ======================================================
// LIST
// ======================================================
func (h *LandHandler) List(c *gin.Context) {
	id, ok := currentIdentity(c)
	if !ok {
		return
	}

	page, err := h.list.Execute(c.Request.Context(), id, domain.Filter{
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
		Search:   c.Query("search"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewLandList(page))
}

// ======================================================
// GET
// ======================================================
func (h *LandHandler) Get(c *gin.Context) {
	id, ok := currentIdentity(c)
	if !ok {
		return
	}

	l, err := h.get.Execute(c.Request.Context(), id, c.Param("id"))
	if err != nil {
		httperr.RespondWithMessage(c, err, msgLandNotFound)
		return
	}

	httpresp.OK(c, l)
}

// ======================================================
// CREATE
// ======================================================
func (h *LandHandler) Create(c *gin.Context) {
	id, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req LandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.ErrBusiness(httperr.CodeValidation))
		return
	}

	l, err := h.create.Execute(c.Request.Context(), id, req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, l)
}

// ======================================================
// UPDATE
// ======================================================
func (h *LandHandler) Update(c *gin.Context) {
	id, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req LandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.ErrBusiness(httperr.CodeValidation))
		return
	}

	l, err := h.update.Execute(c.Request.Context(), id, c.Param("id"), req.input())
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.RespondWithMessage(c, err, msgLandNotFound)
			return
		}
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, l)
}

// ======================================================
// DELETE
// ======================================================
func (h *LandHandler) Delete(c *gin.Context) {
	id, ok := currentIdentity(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id, c.Param("id")); err != nil {
		httperr.RespondWithMessage(c, err, msgLandNotFound)
		return
	}

	httpresp.Message(c, "Land deleted successfully")
}
