package fixtures

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yolku/staffing-backend/internal/models"
)

type demoFacility struct {
	name    string
	ftype   string
	address string
	city    string
	state   string
	zip     string
	phone   string
}

type demoPosition struct {
	facility   int // index into demoFacilities
	title      string
	profession string
	daysAhead  int
	start      string
	end        string
	rate       float64
	openings   int
}

var demoFacilities = []demoFacility{
	{"Sunrise Valley Medical Center", models.FacilityTypeHospital, "2400 Capitol Ave", "Sacramento", "CA", "95816", "(916) 555-0142"},
	{"Harborview Skilled Nursing", models.FacilityTypeNursingHome, "325 9th Ave", "Seattle", "WA", "98104", "(206) 555-0188"},
	{"Lone Star Community Clinic", models.FacilityTypeClinic, "1100 Congress Ave", "Austin", "TX", "78701", "(512) 555-0107"},
	{"Brooklyn Heights Assisted Living", models.FacilityTypeAssistedLiving, "75 Henry St", "Brooklyn", "NY", "11201", "(718) 555-0163"},
	{"Gulf Coast Rehabilitation Center", models.FacilityTypeRehabCenter, "4200 Bayshore Blvd", "Tampa", "FL", "33611", "(813) 555-0129"},
	{"Cascade Urgent Care", models.FacilityTypeUrgentCare, "1500 SW Park Ave", "Portland", "OR", "97201", "(503) 555-0174"},
}

var demoPositions = []demoPosition{
	{0, "ICU Night Shift RN", models.ProfessionRN, 1, "19:00:00", "07:00:00", 68.50, 2},
	{0, "Med-Surg Day Shift RN", models.ProfessionRN, 2, "07:00:00", "19:00:00", 62.00, 3},
	{0, "Respiratory Therapist", models.ProfessionTherapist, 3, "07:00:00", "15:00:00", 48.00, 1},
	{1, "Long Term Care LPN", models.ProfessionLPN, 1, "06:00:00", "14:00:00", 38.75, 2},
	{1, "Weekend CNA", models.ProfessionCNA, 5, "14:00:00", "22:00:00", 24.50, 4},
	{2, "Family Practice NP", models.ProfessionNP, 2, "08:00:00", "17:00:00", 72.00, 1},
	{2, "Clinic Medical Assistant", models.ProfessionCNA, 4, "08:00:00", "16:00:00", 22.00, 2},
	{3, "Evening Shift LPN", models.ProfessionLPN, 1, "15:00:00", "23:00:00", 36.00, 2},
	{3, "Overnight CNA", models.ProfessionCNA, 3, "22:00:00", "06:00:00", 26.00, 3},
	{4, "Physical Therapist", models.ProfessionTherapist, 6, "09:00:00", "17:00:00", 58.00, 1},
	{4, "Rehab RN", models.ProfessionRN, 7, "07:00:00", "19:00:00", 60.00, 2},
	{5, "Urgent Care RN", models.ProfessionRN, 1, "10:00:00", "22:00:00", 64.00, 1},
}

// DemoStore builds a deterministic seeded store for demo deployments.
// Shift dates are relative to the current day so the listings always
// look upcoming.
func DemoStore() *Store {
	s := NewStore()
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	facilityIDs := make([]uuid.UUID, len(demoFacilities))
	for i, f := range demoFacilities {
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("facility:"+f.name))
		facilityIDs[i] = id
		s.AddFacility(models.Facility{
			ID:           id,
			Name:         f.name,
			Email:        fmt.Sprintf("demo-facility-%d@example.com", i+1),
			FacilityType: f.ftype,
			Address:      f.address,
			City:         f.city,
			State:        f.state,
			ZipCode:      f.zip,
			Phone:        sql.NullString{String: f.phone, Valid: true},
			IsActive:     true,
			CreatedAt:    today,
			UpdatedAt:    today,
		})
	}

	for i, p := range demoPositions {
		created := today.Add(time.Duration(i) * time.Minute)
		s.AddPosition(models.Position{
			ID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte("position:"+p.title)),
			FacilityID: facilityIDs[p.facility],
			Title:      p.title,
			Profession: p.profession,
			ShiftDate:  models.CalendarDate{Time: today.AddDate(0, 0, p.daysAhead)},
			StartTime:  p.start,
			EndTime:    p.end,
			HourlyRate: p.rate,
			Openings:   p.openings,
			Status:     models.PositionStatusOpen,
			IsActive:   true,
			CreatedAt:  created,
			UpdatedAt:  created,
		})
	}

	return s
}
