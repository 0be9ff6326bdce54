package http

import (
	"net/http"

	"github.com/baynunah-hr/hr-backend-go/internal/handler/http/response"
	notificationsvc "github.com/baynunah-hr/hr-backend-go/internal/service/notification"
	"github.com/go-chi/chi/v5"
)

type NotificationHandler interface {
	ListMine(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService *notificationsvc.Service
}

func NewNotificationHandler(notificationService *notificationsvc.Service) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: notificationService}
}

// ListMine implements NotificationHandler.
func (n *NotificationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	actorID, _, err := actorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"
	items, err := n.notificationService.ListByUser(r.Context(), actorID, unreadOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, items, &response.Meta{TotalItems: int64(len(items))})
}

// MarkRead implements NotificationHandler.
func (n *NotificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID := chi.URLParam(r, "id")
	if notificationID == "" {
		response.BadRequest(w, "Notification ID is required", nil)
		return
	}

	if err := n.notificationService.MarkRead(r.Context(), notificationID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", nil)
}
