package httperr

var messages = map[string]string{
	// booking
	"booking_not_found":          "Booking not found.",
	"slot_unavailable":           "The selected time slot is not available.",
	"booking_not_editable":       "Only pending bookings can be changed.",
	"booking_not_deletable":      "Only pending or cancelled bookings can be deleted.",
	"proof_not_allowed":          "Payment proof can only be uploaded for your own pending bookings.",
	"invalid_status_transition":  "This status change is not allowed.",
	"not_booking_owner":          "You do not have access to this booking.",
	"admin_only":                 "Only administrators can perform this action.",
	"invalid_status":             "Unknown booking status.",
	"invalid_payment_method":     "Payment method must be qris or transfer.",
	"date_in_past":               "Booking date must be today or later.",
	"invalid_date":               "Date must use the YYYY-MM-DD format.",
	"invalid_time":               "Time must use the HH:MM format.",
	"end_before_start":           "End time must be after start time.",
	"invalid_duration":           "Duration must be between 1 and 12 hours.",
	"notes_too_long":             "Notes may not exceed 1000 characters.",
	"file_required":              "A file is required.",
	"file_too_large":             "File may not be larger than 2 MB.",
	"unsupported_file_type":      "File must be a jpeg, png or gif image.",
	"invalid_image":              "File is not a valid image.",
	"studio_not_found":           "Studio not found.",
	"studio_inactive":            "The selected studio is not available for booking.",
	"studio_has_active_bookings": "Studios with pending or paid bookings cannot be deleted.",
	"name_required":              "Name is required.",
	"name_too_long":              "Name may not exceed 255 characters.",
	"invalid_hourly_rate":        "Hourly rate must be between 0 and 99999999.99.",
	// auth
	"email_taken":          "This email is already registered.",
	"invalid_email_domain": "The email domain does not appear to be valid.",
}

func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return "Request could not be processed."
}
