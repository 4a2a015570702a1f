package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salonbook-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 2026-03-02 is a Monday; the seeded salon is closed on Sundays and the
// seeded staff work 09:00-17:00 within 09:00-18:00 opening hours.
const (
	availMonday = "2026-03-02"
	availSunday = "2026-03-01"
)

func availabilityFixture(t *testing.T) (*gin.Engine, models.Salon, models.Staff) {
	t.Helper()
	db := freshDB()
	router := setupAvailabilityRouter(db)

	admin, _ := seedTestUser(db, "seed-avail-"+uuid.New().String()[:8]+"@test.com", "admin", nil)
	salon := seedSalon(db, "Avail Salon", admin.ID)
	seedOperatingHours(db, salon.ID)
	staff := seedStaff(db, salon.ID, "Amy")
	return router, salon, staff
}

func TestAvailabilityFullShift(t *testing.T) {
	router, salon, _ := availabilityFixture(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/salons/"+salon.ID.String()+"/availability?date="+availMonday, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	entries := resp["availability"].([]interface{})
	if len(entries) != 1 {
		t.Fatalf("expected 1 staff entry, got %d", len(entries))
	}

	entry := entries[0].(map[string]interface{})
	if entry["is_available"] != true {
		t.Fatalf("expected staff available, got %v (reason %v)", entry["is_available"], entry["reason"])
	}
	slots := entry["available_slots"].([]interface{})
	if len(slots) != 1 {
		t.Fatalf("expected 1 free slot, got %d", len(slots))
	}
	slot := slots[0].(map[string]interface{})
	if slot["start_time"] != "09:00" || slot["end_time"] != "17:00" {
		t.Errorf("expected 09:00-17:00, got %v-%v", slot["start_time"], slot["end_time"])
	}
}

func TestAvailabilityShopClosed(t *testing.T) {
	router, salon, _ := availabilityFixture(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/salons/"+salon.ID.String()+"/availability?date="+availSunday, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	entries := resp["availability"].([]interface{})
	entry := entries[0].(map[string]interface{})
	if entry["is_available"] != false {
		t.Fatal("expected staff unavailable on Sunday")
	}
	if entry["reason"] != "Shop closed" {
		t.Errorf("expected reason 'Shop closed', got %v", entry["reason"])
	}
}

func TestAvailabilityOnLeave(t *testing.T) {
	router, salon, staff := availabilityFixture(t)

	date, _ := time.Parse("2006-01-02", availMonday)
	testDB.Create(&models.StaffLeave{StaffID: staff.ID, Date: date, Reason: "Holiday"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/salons/"+salon.ID.String()+"/availability?date="+availMonday, nil))

	resp := parseResponse(w)
	entries := resp["availability"].([]interface{})
	entry := entries[0].(map[string]interface{})
	if entry["is_available"] != false {
		t.Fatal("expected staff on leave to be unavailable")
	}
	if entry["reason"] != "Holiday" {
		t.Errorf("expected leave reason 'Holiday', got %v", entry["reason"])
	}
}

func TestAvailabilityNotScheduled(t *testing.T) {
	router, salon, staff := availabilityFixture(t)

	// Monday off in the recurring schedule, salon still open
	testDB.Model(&models.StaffWorkDay{}).
		Where("staff_id = ? AND day_of_week = ?", staff.ID, 1).
		Update("is_available", false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/salons/"+salon.ID.String()+"/availability?date="+availMonday, nil))

	resp := parseResponse(w)
	entries := resp["availability"].([]interface{})
	entry := entries[0].(map[string]interface{})
	if entry["reason"] != "Staff not scheduled" {
		t.Errorf("expected reason 'Staff not scheduled', got %v", entry["reason"])
	}
}

func TestAvailabilityBlockedTimeSplitsSlot(t *testing.T) {
	router, salon, staff := availabilityFixture(t)

	date, _ := time.Parse("2006-01-02", availMonday)
	testDB.Create(&models.StaffBlockedTime{
		StaffID:   staff.ID,
		Date:      date,
		StartTime: "12:00",
		EndTime:   "13:00",
		Reason:    "Lunch",
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/salons/"+salon.ID.String()+"/availability?date="+availMonday, nil))

	resp := parseResponse(w)
	entries := resp["availability"].([]interface{})
	entry := entries[0].(map[string]interface{})
	slots := entry["available_slots"].([]interface{})
	if len(slots) != 2 {
		t.Fatalf("expected 2 free slots around the block, got %d: %v", len(slots), slots)
	}
	first := slots[0].(map[string]interface{})
	second := slots[1].(map[string]interface{})
	if first["end_time"] != "12:00" || second["start_time"] != "13:00" {
		t.Errorf("expected split at 12:00/13:00, got %v / %v", first, second)
	}

	blocked := entry["blocked_slots"].([]interface{})
	if len(blocked) != 1 {
		t.Fatalf("expected 1 blocked slot, got %d", len(blocked))
	}
	if blocked[0].(map[string]interface{})["reason"] != "Lunch" {
		t.Errorf("expected blocked reason 'Lunch', got %v", blocked[0])
	}
}

func TestAvailabilityBookingBlocksSlot(t *testing.T) {
	db := freshDB()
	router := setupAvailabilityRouter(db)

	admin, _ := seedTestUser(db, "seed-bk-avail@test.com", "admin", nil)
	salon := seedSalon(db, "Booked Salon", admin.ID)
	seedOperatingHours(db, salon.ID)
	staff := seedStaff(db, salon.ID, "Beth")
	service := seedService(db, salon.ID, "Cut", 60, 30.00)
	customer, _ := seedTestUser(db, "cust-avail@test.com", "customer", nil)

	date, _ := time.Parse("2006-01-02", availMonday)
	seedBooking(db, customer.ID, salon.ID, staff.ID, service.ID, date, "10:00", "11:00", models.BookingStatusConfirmed)
	// Cancelled bookings do not block
	seedBooking(db, customer.ID, salon.ID, staff.ID, service.ID, date, "14:00", "15:00", models.BookingStatusCancelled)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/salons/"+salon.ID.String()+"/availability?date="+availMonday, nil))

	resp := parseResponse(w)
	entries := resp["availability"].([]interface{})
	entry := entries[0].(map[string]interface{})
	slots := entry["available_slots"].([]interface{})
	if len(slots) != 2 {
		t.Fatalf("expected confirmed booking to split the day into 2 slots, got %d: %v", len(slots), slots)
	}
	first := slots[0].(map[string]interface{})
	if first["start_time"] != "09:00" || first["end_time"] != "10:00" {
		t.Errorf("expected 09:00-10:00 before the booking, got %v", first)
	}
	second := slots[1].(map[string]interface{})
	if second["start_time"] != "11:00" || second["end_time"] != "17:00" {
		t.Errorf("expected 11:00-17:00 after the booking, got %v", second)
	}
}

func TestAvailabilityInactiveStaffExcluded(t *testing.T) {
	router, salon, staff := availabilityFixture(t)

	testDB.Model(&models.Staff{}).Where("id = ?", staff.ID).Update("status", models.StaffStatusInactive)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/salons/"+salon.ID.String()+"/availability?date="+availMonday, nil))

	resp := parseResponse(w)
	entries := resp["availability"].([]interface{})
	if len(entries) != 0 {
		t.Errorf("expected inactive staff to be excluded entirely, got %d entries", len(entries))
	}
}

func TestAvailableStaffFiltersUnavailable(t *testing.T) {
	db := freshDB()
	router := setupAvailabilityRouter(db)

	admin, _ := seedTestUser(db, "seed-avst@test.com", "admin", nil)
	salon := seedSalon(db, "Filter Salon", admin.ID)
	seedOperatingHours(db, salon.ID)
	seedStaff(db, salon.ID, "Works")
	onLeave := seedStaff(db, salon.ID, "Away")

	date, _ := time.Parse("2006-01-02", availMonday)
	db.Create(&models.StaffLeave{StaffID: onLeave.ID, Date: date})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/salons/"+salon.ID.String()+"/availability/staff?date="+availMonday, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	staff := resp["staff"].([]interface{})
	if len(staff) != 1 {
		t.Fatalf("expected 1 available staff member, got %d", len(staff))
	}
	if staff[0].(map[string]interface{})["staff_name"] != "Works" {
		t.Errorf("expected 'Works', got %v", staff[0])
	}
}

func TestAvailabilityStaffIDFilter(t *testing.T) {
	db := freshDB()
	router := setupAvailabilityRouter(db)

	admin, _ := seedTestUser(db, "seed-filter@test.com", "admin", nil)
	salon := seedSalon(db, "ID Filter Salon", admin.ID)
	seedOperatingHours(db, salon.ID)
	target := seedStaff(db, salon.ID, "Target")
	seedStaff(db, salon.ID, "Other")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET",
		"/api/salons/"+salon.ID.String()+"/availability?date="+availMonday+"&staff_id="+target.ID.String(), nil))

	resp := parseResponse(w)
	entries := resp["availability"].([]interface{})
	if len(entries) != 1 {
		t.Fatalf("expected 1 filtered entry, got %d", len(entries))
	}
	if entries[0].(map[string]interface{})["staff_name"] != "Target" {
		t.Errorf("expected 'Target', got %v", entries[0])
	}
}

func TestAvailabilityRequiresDate(t *testing.T) {
	router, salon, _ := availabilityFixture(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/salons/"+salon.ID.String()+"/availability", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAvailabilityBadDateFormat(t *testing.T) {
	router, salon, _ := availabilityFixture(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/salons/"+salon.ID.String()+"/availability?date=02-03-2026", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAvailabilityUnknownSalon(t *testing.T) {
	db := freshDB()
	router := setupAvailabilityRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/salons/"+uuid.New().String()+"/availability?date="+availMonday, nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}
	_ = db
}
