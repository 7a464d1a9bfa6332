package wallpaper

import (
	"strings"

	"github.com/festperfect/festperfect/pkg/festival"
)

// DeviceSize is a lock-screen resolution preset.
type DeviceSize struct {
	Name   string
	Width  int
	Height int
	Label  string
}

// DeviceSizes are the supported lock-screen presets, in display order.
var DeviceSizes = []DeviceSize{
	{Name: "iphone-14-pro", Width: 1179, Height: 2556, Label: "iPhone 14 Pro"},
	{Name: "iphone-se", Width: 750, Height: 1334, Label: "iPhone SE/8"},
	{Name: "android-standard", Width: 1080, Height: 2340, Label: "Android (Standard)"},
	{Name: "android-large", Width: 1440, Height: 3200, Label: "Android (Large)"},
}

// DeviceByName returns the preset with the given name.
func DeviceByName(name string) (DeviceSize, bool) {
	for _, device := range DeviceSizes {
		if device.Name == name {
			return device, true
		}
	}
	return DeviceSize{}, false
}

// ContactQRText builds the emergency contact card encoded into the wallpaper
// QR code, for whoever finds a lost phone.
func ContactQRText(info *festival.ContactInfo) string {
	name := "Owner"
	phone := "Not provided"
	alternate := ""
	if info != nil {
		if info.Name != "" {
			name = info.Name
		}
		if info.Phone != "" {
			phone = info.Phone
		}
		alternate = info.AlternateContact
	}

	var sb strings.Builder
	sb.WriteString("If found, please contact:\n")
	sb.WriteString(name + "\n")
	sb.WriteString("Phone: " + phone)
	if alternate != "" {
		sb.WriteString("\nAlt: " + alternate)
	}
	return sb.String()
}

// StageNameByID resolves a stage name within one day, falling back to a
// placeholder for dangling references.
func StageNameByID(day festival.FestivalDay, stageID string) string {
	for _, stage := range day.Stages {
		if stage.ID == stageID {
			return stage.Name
		}
	}
	return "Unknown Stage"
}
