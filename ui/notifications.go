// Package ui provides the graphical user interface for LED Board.
// This file contains the notification system for board events.
package ui

import (
	"fmt"
	"log"
	"os/exec"

	"github.com/atran/led-board/common"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	NotificationInfo NotificationType = iota
	NotificationSuccess
	NotificationWarning
	NotificationError
)

// Notification represents a system notification
type Notification struct {
	Title   string
	Message string
	Type    NotificationType
	Icon    string
}

// ShowNotification displays a system notification using notify-send
func ShowNotification(n Notification) {
	icon := n.Icon
	if icon == "" {
		switch n.Type {
		case NotificationWarning:
			icon = "dialog-warning"
		case NotificationError:
			icon = "dialog-error"
		default:
			icon = "preferences-desktop-display"
		}
	}

	urgency := "normal"
	switch n.Type {
	case NotificationError:
		urgency = "critical"
	case NotificationWarning:
		urgency = "normal"
	default:
		urgency = "low"
	}

	cmd := exec.Command("notify-send",
		"--app-name=LED Board",
		"--icon="+icon,
		"--urgency="+urgency,
		n.Title,
		n.Message,
	)

	if err := cmd.Run(); err != nil {
		log.Printf("Error showing notification: %v", err)
	}
}

// NotifyAllOn shows a notification when every LED lights up.
func NotifyAllOn(count int) {
	ShowNotification(Notification{
		Title:   "LED Board",
		Message: fmt.Sprintf("All %d LEDs turned on", count),
		Type:    NotificationSuccess,
	})
}

// NotifyAllOff shows a notification when the whole board goes dark.
func NotifyAllOff() {
	ShowNotification(Notification{
		Title:   "LED Board",
		Message: "All LEDs turned off",
		Type:    NotificationInfo,
	})
}

// DesktopNotifier sends notifications through notify-send.
type DesktopNotifier struct{}

var _ common.Notifier = DesktopNotifier{}

// Notify sends a notification with the default icon.
func (DesktopNotifier) Notify(title, message string) error {
	ShowNotification(Notification{Title: title, Message: message})
	return nil
}

// NotifyWithIcon sends a notification with a custom icon.
func (DesktopNotifier) NotifyWithIcon(title, message, icon string) error {
	ShowNotification(Notification{Title: title, Message: message, Icon: icon})
	return nil
}

// NotifyAutoOff shows a notification when a timer turns an LED off.
func NotifyAutoOff(id int) {
	ShowNotification(Notification{
		Title:   "LED Board",
		Message: fmt.Sprintf("LED #%d turned off by its timer", id),
		Type:    NotificationInfo,
	})
}
