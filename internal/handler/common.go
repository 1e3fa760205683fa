package handler // handler defines http handlers

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// dayLayout is the ISO date format accepted for trip days and search
// bounds.
const dayLayout = "2006-01-02"

// pathID parses the numeric :id route parameter.
func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// validDay reports whether s parses as an ISO date.
func validDay(s string) bool {
	_, err := time.Parse(dayLayout, s)
	return err == nil
}

// widenDayBound turns a date-only upper bound into an inclusive
// end-of-day timestamp so `created_at <= bound` covers the whole day.
// Bounds that already carry a time component pass through unchanged.
func widenDayBound(s string) string {
	if _, err := time.Parse(dayLayout, s); err == nil {
		return s + " 23:59:59"
	}
	return s
}
