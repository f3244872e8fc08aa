package api

import (
	"net/http"

	reqdto "hotel-desk/internal/handler/dto/request"
	resdto "hotel-desk/internal/handler/dto/response"
	"hotel-desk/internal/handler/httperr"
	"hotel-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	rooms        queries.RoomQueries
	availability queries.AvailabilityQueries
}

func NewRoomHandler(rooms queries.RoomQueries, availability queries.AvailabilityQueries) *RoomHandler {
	return &RoomHandler{rooms: rooms, availability: availability}
}

// @Summary List rooms
// @Description Room overview with type, status and nightly cost
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Failure 500 {object} httperr.Response
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.rooms.ListRooms(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to list rooms")
		return
	}
	res, err := resdto.FromRoomViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list rooms", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List room types
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomTypeResponse
// @Failure 500 {object} httperr.Response
// @Router /room-types [get]
func (h *RoomHandler) ListTypes(c *gin.Context) {
	views, err := h.rooms.ListRoomTypes(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to list room types")
		return
	}
	res, err := resdto.FromRoomTypeViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list room types", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List room types with availability
// @Description Types having at least one room currently available
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.AvailableRoomTypeResponse
// @Failure 500 {object} httperr.Response
// @Router /room-types/available [get]
func (h *RoomHandler) ListAvailableTypes(c *gin.Context) {
	views, err := h.availability.RoomTypesWithAvailability(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to list room types")
		return
	}
	res, err := resdto.FromAvailableRoomTypeViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list room types", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Search available rooms
// @Description Rooms of a type free for the given dates
// @Tags rooms
// @Produce json
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Param type query string true "Room type code"
// @Success 200 {array} resdto.AvailableRoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /availability [get]
func (h *RoomHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	views, err := h.availability.AvailableRooms(c.Request.Context(), q.Start, q.End, q.Type)
	if err != nil {
		httperr.Abort(c, err, "Failed to search availability")
		return
	}
	res, err := resdto.FromAvailableRoomViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to search availability", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
