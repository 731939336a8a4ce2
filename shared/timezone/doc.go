// Package timezone holds the application timezone configured via APP_TIMEZONE.
//
// Slot hours, booking windows and "today" are all evaluated in this zone:
//
//	now := timezone.Now()       // wall clock in the app timezone
//	today := timezone.Today()   // civil date, midnight UTC
//	t, err := timezone.Parse("2006-01-02 15:04", "2025-07-10 18:00")
//
// Use IANA names such as "Asia/Jakarta" or "UTC". Unknown names fall back to UTC.
package timezone
