package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/homeland-scout/pg-finder/internal/model"
	"github.com/homeland-scout/pg-finder/internal/queue"
	"github.com/homeland-scout/pg-finder/internal/repository"
	queue_publisher "github.com/homeland-scout/pg-finder/internal/service"
)

// InterestHandler records end-user interest in a listing. The happy
// path publishes an event for the background consumer; when the
// broker is down the interaction is appended directly so the user
// action is never dropped.
type InterestHandler struct {
	Listings     *repository.ListingStore
	Interactions *repository.InteractionLog
}

func NewInterestHandler(listings *repository.ListingStore, interactions *repository.InteractionLog) *InterestHandler {
	return &InterestHandler{Listings: listings, Interactions: interactions}
}

type interestReq struct {
	UserName  string `json:"userName"`
	UserPhone string `json:"userPhone"`
	UserEmail string `json:"userEmail"`
	Message   string `json:"message"`
}

// RecordInterest handles POST /v1/listings/:id/interest.
func (h *InterestHandler) RecordInterest(c echo.Context) error {
	var req interestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.UserName = strings.TrimSpace(req.UserName)
	if req.UserName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "userName required"})
	}

	l, err := h.Listings.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "listing not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}

	now := time.Now().UTC()
	ev := queue.InterestRecordedEvent{
		InteractionID: uuid.NewString(),
		ListingID:     l.ID,
		ListingName:   l.Name,
		UserName:      req.UserName,
		UserPhone:     req.UserPhone,
		UserEmail:     req.UserEmail,
		Message:       req.Message,
		LikedAt:       now.Format(time.RFC3339),
	}

	if err := queue_publisher.PublishInterestRecorded(c.Request().Context(), ev); err != nil {
		// Broker unavailable; append synchronously instead.
		log.Printf("interest: publish failed, appending directly: %v", err)
		h.Interactions.Append(model.Interaction{
			ID:        ev.InteractionID,
			UserName:  ev.UserName,
			UserPhone: ev.UserPhone,
			UserEmail: ev.UserEmail,
			ListingID: ev.ListingID,
			LikedAt:   now,
			Message:   ev.Message,
		})
	}

	return c.JSON(http.StatusAccepted, echo.Map{"interaction_id": ev.InteractionID})
}
