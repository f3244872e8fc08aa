package api

import (
	"net/http"

	reqdto "hotel-desk/internal/handler/dto/request"
	resdto "hotel-desk/internal/handler/dto/response"
	"hotel-desk/internal/handler/httperr"
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	cmds commands.GuestCommands
	q    queries.GuestQueries
}

func NewGuestHandler(cmds commands.GuestCommands, q queries.GuestQueries) *GuestHandler {
	return &GuestHandler{cmds: cmds, q: q}
}

// @Summary Register guest
// @Tags guests
// @Accept json
// @Produce json
// @Param request body reqdto.CreateGuestRequest true "Guest"
// @Success 201 {object} resdto.GuestResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /guests [post]
func (h *GuestHandler) Create(c *gin.Context) {
	var req reqdto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Create(c.Request.Context(), req.ToParams()); err != nil {
		httperr.Abort(c, err, "Create guest failed")
		return
	}
	h.respondWithGuest(c, http.StatusCreated, req.ID)
}

// @Summary Find guests
// @Description Substring match on id, name or phone
// @Tags guests
// @Produce json
// @Param q query string false "Search criterion"
// @Success 200 {array} resdto.GuestResponse
// @Failure 500 {object} httperr.Response
// @Router /guests [get]
func (h *GuestHandler) Find(c *gin.Context) {
	views, err := h.q.Find(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.Abort(c, err, "Failed to search guests")
		return
	}
	res, err := resdto.FromGuestViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to search guests", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get guest
// @Tags guests
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} resdto.GuestResponse
// @Failure 404 {object} httperr.Response
// @Router /guests/{id} [get]
func (h *GuestHandler) Get(c *gin.Context) {
	h.respondWithGuest(c, http.StatusOK, c.Param("id"))
}

// @Summary Update guest
// @Description Replace name and phone
// @Tags guests
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body reqdto.UpdateGuestRequest true "Contact data"
// @Success 200 {object} resdto.GuestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /guests/{id} [put]
func (h *GuestHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req reqdto.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), req.ToParams(id)); err != nil {
		httperr.Abort(c, err, "Update guest failed")
		return
	}
	h.respondWithGuest(c, http.StatusOK, id)
}

// @Summary Patch guest
// @Description Update name and/or phone; omitted fields keep their value
// @Tags guests
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body reqdto.PatchGuestRequest true "Contact data"
// @Success 200 {object} resdto.GuestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /guests/{id} [patch]
func (h *GuestHandler) Patch(c *gin.Context) {
	var req reqdto.PatchGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	existing, err := h.q.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err, "Failed to load guest")
		return
	}
	if err := h.cmds.Update(c.Request.Context(), req.ToParams(existing)); err != nil {
		httperr.Abort(c, err, "Update guest failed")
		return
	}
	h.respondWithGuest(c, http.StatusOK, existing.ID)
}

// @Summary Delete guest
// @Description Fails with 409 while the guest still has reservations
// @Tags guests
// @Param id path string true "Guest ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /guests/{id} [delete]
func (h *GuestHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Abort(c, err, "Delete guest failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GuestHandler) respondWithGuest(c *gin.Context, status int, id string) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load guest")
		return
	}
	c.JSON(status, resdto.FromGuestView(view))
}
