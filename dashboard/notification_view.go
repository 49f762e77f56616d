package dashboard

import (
	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
)

// NotificationView is the modal model for the pending notification list:
// only the first entry is shown, the action button appears only when both
// the label and the url are present. A url without a label gets no button
// either, so the dismiss label stays "Close" in that case, not "Cancel".
type NotificationView struct {
	Message      string
	ActionText   string
	ActionUrl    string
	HasAction    bool
	DismissLabel string
}

func NewNotificationView(notifications []domain.Notification) (NotificationView, bool) {
	if len(notifications) == 0 {
		return NotificationView{}, false
	}

	first := notifications[0]
	view := NotificationView{
		Message:      first.Message,
		DismissLabel: "Close",
	}
	if first.ActionText != nil && *first.ActionText != "" &&
		first.ActionUrl != nil && *first.ActionUrl != "" {
		view.ActionText = *first.ActionText
		view.ActionUrl = *first.ActionUrl
		view.HasAction = true
		view.DismissLabel = "Cancel"
	}
	return view, true
}
