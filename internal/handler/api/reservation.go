package api

import (
	"net/http"
	"strconv"

	reqdto "hotel-desk/internal/handler/dto/request"
	resdto "hotel-desk/internal/handler/dto/response"
	"hotel-desk/internal/handler/httperr"
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Preview next reservation number
// @Description Informational; the number is assigned when the reservation is created
// @Tags reservations
// @Produce json
// @Success 200 {object} resdto.NextNumberResponse
// @Failure 500 {object} httperr.Response
// @Router /reservations/next-number [get]
func (h *ReservationHandler) NextNumber(c *gin.Context) {
	n, err := h.q.NextNumber(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to compute next number")
		return
	}
	c.JSON(http.StatusOK, resdto.NextNumberResponse{Number: n})
}

// @Summary Create reservation
// @Description Book a room; the room becomes Reserved
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} resdto.ReservationCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.Abort(c, err, "Create reservation failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateResult(result))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param number path int true "Reservation number"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{number} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	number, ok := parseNumber(c)
	if !ok {
		return
	}
	view, err := h.q.GetByNumber(c.Request.Context(), number)
	if err != nil {
		httperr.Abort(c, err, "Failed to load reservation")
		return
	}
	res, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservation", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Cancel reservation
// @Description Remove the reservation; the room is released when no other stay holds it
// @Tags reservations
// @Param number path int true "Reservation number"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{number} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	number, ok := parseNumber(c)
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), number); err != nil {
		httperr.Abort(c, err, "Cancel reservation failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List a guest's reservations
// @Tags reservations
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {array} resdto.GuestReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /guests/{id}/reservations [get]
func (h *ReservationHandler) ByGuest(c *gin.Context) {
	items, err := h.q.GuestReservations(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err, "Failed to list reservations")
		return
	}
	res, err := resdto.FromGuestReservationItems(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func parseNumber(c *gin.Context) (int64, bool) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil || number <= 0 {
		if err == nil {
			err = queries.ErrInvalidNumber
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation number", nil)
		return 0, false
	}
	return number, true
}
