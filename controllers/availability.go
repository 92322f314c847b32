package controllers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/barberbook/booking-api/db"
	"github.com/barberbook/booking-api/models"
	"github.com/barberbook/booking-api/utils"
)

// bookedTimesFor returns the time labels of non-cancelled bookings for
// the (barber, dates) span, keyed by date.
func bookedTimesFor(barberID uint, dates []string) (map[string][]string, error) {
	var bookings []models.Booking
	err := db.DB.Select("appointment_date, appointment_time").
		Where("barber_id = ? AND appointment_date IN ? AND status <> ?", barberID, dates, models.StatusCancelled).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	byDate := make(map[string][]string, len(dates))
	for _, b := range bookings {
		byDate[b.AppointmentDate] = append(byDate[b.AppointmentDate], b.AppointmentTime)
	}
	return byDate, nil
}

// GetAvailableTimes resolves the bookable/booked partition for one
// (barber, date). Reads are not transactional with concurrent booking
// writes; the admission path re-validates and is the sole enforcement
// point.
func GetAvailableTimes(c *fiber.Ctx) error {
	barberID, err := models.ParseBarberID(c.Query("barberId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "barberId and date are required",
		})
	}
	date := c.Query("date")
	if _, err := utils.ParseDate(date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date",
			Error:   err.Error(),
		})
	}

	closed, reason, err := models.IsClosed(db.DB, barberID, date)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to check closed dates",
			Error:   err.Error(),
		})
	}

	var booked []string
	if !closed {
		byDate, err := bookedTimesFor(barberID, []string{date})
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
				Message: "Failed to fetch bookings",
				Error:   err.Error(),
			})
		}
		booked = byDate[date]
	}

	return c.JSON(utils.BuildDaySchedule(barberID, date, booked, closed, reason))
}

// GetAvailableTimesBatch resolves up to MaxBatchDates dates in one
// pass: one closure fetch and one booking fetch for the whole span,
// partitioned in memory.
func GetAvailableTimesBatch(c *fiber.Ctx) error {
	barberID, err := models.ParseBarberID(c.Query("barberId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "barberId and dates are required",
		})
	}
	raw := c.Query("dates")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "barberId and dates are required",
		})
	}

	dates := strings.Split(raw, ",")
	if len(dates) > utils.MaxBatchDates {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: fmt.Sprintf("At most %d dates per request", utils.MaxBatchDates),
		})
	}
	for i, date := range dates {
		dates[i] = strings.TrimSpace(date)
		if _, err := utils.ParseDate(dates[i]); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid date",
				Error:   err.Error(),
			})
		}
	}
	sorted := append([]string(nil), dates...)
	sort.Strings(sorted)
	minDate, maxDate := sorted[0], sorted[len(sorted)-1]

	var closures []models.ClosedDate
	err = db.DB.Where("start_date <= ? AND end_date >= ?", maxDate, minDate).
		Where("barber_id IS NULL OR barber_id = ?", barberID).
		Find(&closures).Error
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to check closed dates",
			Error:   err.Error(),
		})
	}

	byDate, err := bookedTimesFor(barberID, dates)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	results := make(map[string]utils.DaySchedule, len(dates))
	for _, date := range dates {
		closed, reason := false, ""
		for _, closure := range closures {
			if date >= closure.StartDate && date <= closure.EndDate {
				closed, reason = true, closure.DisplayReason()
				break
			}
		}
		results[date] = utils.BuildDaySchedule(barberID, date, byDate[date], closed, reason)
	}
	return c.JSON(results)
}
