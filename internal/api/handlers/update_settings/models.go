package update_settings

// UpdateSettingsRequest HTTP request model
// Обновляются только переданные поля
type UpdateSettingsRequest struct {
	SlotGranularityMinutes  *int `json:"slotGranularityMinutes,omitempty"`
	MinBookingNoticeMinutes *int `json:"minBookingNoticeMinutes,omitempty"`
	AdvanceBookingDays      *int `json:"advanceBookingDays,omitempty"`
}
