package attendance

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workline-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/workline-hq/attendance-backend-go/internal/domain/authz"
	"github.com/workline-hq/attendance-backend-go/internal/domain/employee"
	"github.com/workline-hq/attendance-backend-go/internal/domain/user"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/clock"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/jwt"
	authzservice "github.com/workline-hq/attendance-backend-go/internal/service/authz"
)

// fakeAttendanceRepo keeps records in a map and enforces the same
// (employee_id, date) uniqueness the database index does. Reads mirror
// the LEFT JOIN in internal/repository/postgresql/attendance.go by
// enriching records with the employee name and position.
type fakeAttendanceRepo struct {
	records   map[string]attendance.Attendance
	employees *fakeEmployeeRepo
}

func newFakeAttendanceRepo(employees *fakeEmployeeRepo) *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		records:   make(map[string]attendance.Attendance),
		employees: employees,
	}
}

func (f *fakeAttendanceRepo) enrich(att attendance.Attendance) attendance.Attendance {
	for _, e := range f.employees.employees {
		if e.ID == att.EmployeeID {
			name := e.FullName
			att.EmployeeName = &name
			att.EmployeePosition = e.Position
			break
		}
	}
	return att
}

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "/" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range f.records {
		if dayKey(existing.EmployeeID, existing.Date) == dayKey(att.EmployeeID, att.Date) {
			return attendance.Attendance{}, attendance.ErrDuplicateRecord
		}
	}

	att.ID = uuid.NewString()
	now := time.Now()
	att.CreatedAt = now
	att.UpdatedAt = now
	f.records[att.ID] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	att, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return f.enrich(att), nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	for _, att := range f.records {
		if dayKey(att.EmployeeID, att.Date) == dayKey(employeeID, date) {
			found := f.enrich(att)
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	existing, ok := f.records[att.ID]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	att.CreatedAt = existing.CreatedAt
	att.UpdatedAt = time.Now()
	f.records[att.ID] = att
	return nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	var result []attendance.Attendance
	for _, att := range f.records {
		if filter.EmployeeID != nil && att.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(att.Status) != *filter.Status {
			continue
		}
		if filter.Date != nil && *filter.Date != "" {
			day, err := time.Parse("2006-01-02", *filter.Date)
			if err != nil {
				return nil, 0, err
			}
			// [day, day+1)
			if att.Date.Before(day) || !att.Date.Before(day.AddDate(0, 0, 1)) {
				continue
			}
		}
		if filter.Month != nil && filter.Year != nil {
			firstOfMonth := time.Date(*filter.Year, time.Month(*filter.Month), 1, 0, 0, 0, 0, time.UTC)
			endOfMonth := firstOfMonth.AddDate(0, 1, 0).Add(-time.Millisecond)
			if att.Date.Before(firstOfMonth) || att.Date.After(endOfMonth) {
				continue
			}
		}
		result = append(result, f.enrich(att))
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	total := int64(len(result))

	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		if offset >= len(result) {
			result = nil
		} else if end := offset + filter.Limit; end < len(result) {
			result = result[offset:end]
		} else {
			result = result[offset:]
		}
	}

	return result, total, nil
}

func (f *fakeAttendanceRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.UserID != nil && *e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// authedContext mints a real access token and injects it the way the
// verification middleware would, so claim extraction is exercised end to
// end.
func authedContext(t *testing.T, userID string, employeeID *string, role user.Role) context.Context {
	t.Helper()

	jwtService := jwt.NewJWTService("test-secret-key", "1h")
	tokenString, _, err := jwtService.GenerateAccessToken(userID, employeeID, role)
	require.NoError(t, err)

	token, err := jwtService.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

type fixture struct {
	attendanceRepo *fakeAttendanceRepo
	employeeRepo   *fakeEmployeeRepo

	alice employee.Employee
	bob   employee.Employee
	hrID  string
}

func newFixture() *fixture {
	aliceUser := uuid.NewString()
	bobUser := uuid.NewString()
	position := "Software Engineer"
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: uuid.NewString(), UserID: &aliceUser, FullName: "Alice Tan", Position: &position},
		{ID: uuid.NewString(), UserID: &bobUser, FullName: "Bob Irawan"},
	}}
	return &fixture{
		attendanceRepo: newFakeAttendanceRepo(employeeRepo),
		employeeRepo:   employeeRepo,
		hrID:           uuid.NewString(),
	}
}

func (fx *fixture) service(clk clock.Clock) attendance.AttendanceService {
	resolver := authzservice.NewResolver(fx.employeeRepo)
	return NewAttendanceService(fx.attendanceRepo, fx.employeeRepo, resolver, clk)
}

func (fx *fixture) aliceCtx(t *testing.T) context.Context {
	alice := fx.employeeRepo.employees[0]
	return authedContext(t, *alice.UserID, &alice.ID, user.RoleEmployee)
}

func (fx *fixture) hrCtx(t *testing.T) context.Context {
	return authedContext(t, fx.hrID, nil, user.RoleHR)
}

func TestCheckIn(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.Fixed(time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)))
	ctx := fx.aliceCtx(t)

	resp, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	alice := fx.employeeRepo.employees[0]
	assert.Equal(t, alice.ID, resp.EmployeeID)
	assert.Equal(t, "2024-03-04", resp.Date)
	assert.Equal(t, "late", resp.Status)
	require.NotNil(t, resp.CheckInTime)
	assert.Equal(t, "2024-03-04 09:30:00", *resp.CheckInTime)
	assert.Nil(t, resp.CheckOutTime)
	assert.Equal(t, float64(0), resp.WorkHours)
}

func TestCheckIn_Twice(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.Fixed(time.Date(2024, 3, 4, 8, 30, 0, 0, time.UTC)))
	ctx := fx.aliceCtx(t)

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_NextDayAllowed(t *testing.T) {
	fx := newFixture()
	ctx := fx.aliceCtx(t)

	_, err := fx.service(clock.Fixed(time.Date(2024, 3, 4, 8, 30, 0, 0, time.UTC))).CheckIn(ctx)
	require.NoError(t, err)

	resp, err := fx.service(clock.Fixed(time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC))).CheckIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", resp.Date)
	assert.Equal(t, "present", resp.Status)
}

func TestCheckOut(t *testing.T) {
	fx := newFixture()
	ctx := fx.aliceCtx(t)

	_, err := fx.service(clock.Fixed(time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC))).CheckIn(ctx)
	require.NoError(t, err)

	resp, err := fx.service(clock.Fixed(time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC))).CheckOut(ctx)
	require.NoError(t, err)

	require.NotNil(t, resp.CheckOutTime)
	assert.Equal(t, "2024-03-04 17:00:00", *resp.CheckOutTime)
	assert.Equal(t, 7.5, resp.WorkHours)
	// Status stays what check-in classified it as
	assert.Equal(t, "late", resp.Status)
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.Fixed(time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC)))

	_, err := svc.CheckOut(fx.aliceCtx(t))
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_Twice(t *testing.T) {
	fx := newFixture()
	ctx := fx.aliceCtx(t)

	_, err := fx.service(clock.Fixed(time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC))).CheckIn(ctx)
	require.NoError(t, err)

	svc := fx.service(clock.Fixed(time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC)))
	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOut_BeforeCheckIn(t *testing.T) {
	fx := newFixture()
	ctx := fx.aliceCtx(t)

	_, err := fx.service(clock.Fixed(time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC))).CheckIn(ctx)
	require.NoError(t, err)

	// Clock went backwards; hours clamp to zero rather than going negative
	resp, err := fx.service(clock.Fixed(time.Date(2024, 3, 4, 8, 45, 0, 0, time.UTC))).CheckOut(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(0), resp.WorkHours)
}

func TestTodayStatus(t *testing.T) {
	fx := newFixture()
	ctx := fx.aliceCtx(t)

	morning := fx.service(clock.Fixed(time.Date(2024, 3, 4, 7, 0, 0, 0, time.UTC)))
	status, err := morning.TodayStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.HasCheckedIn)
	assert.True(t, status.CanCheckIn)
	assert.False(t, status.CanCheckOut)
	assert.Nil(t, status.TodayAttendance)

	_, err = fx.service(clock.Fixed(time.Date(2024, 3, 4, 8, 30, 0, 0, time.UTC))).CheckIn(ctx)
	require.NoError(t, err)

	afternoon := fx.service(clock.Fixed(time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)))
	status, err = afternoon.TodayStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.HasCheckedIn)
	assert.False(t, status.CanCheckIn)
	assert.True(t, status.CanCheckOut)
	require.NotNil(t, status.TodayAttendance)
	assert.Equal(t, "present", status.TodayAttendance.Status)

	evening := fx.service(clock.Fixed(time.Date(2024, 3, 4, 17, 30, 0, 0, time.UTC)))
	_, err = evening.CheckOut(ctx)
	require.NoError(t, err)

	status, err = evening.TodayStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.HasCheckedIn)
	assert.False(t, status.CanCheckIn)
	assert.False(t, status.CanCheckOut)
}

func TestCreateAttendance(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.Fixed(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)))
	alice := fx.employeeRepo.employees[0]

	checkOut := "17:00"
	resp, err := svc.CreateAttendance(fx.hrCtx(t), attendance.CreateAttendanceRequest{
		EmployeeID:   alice.ID,
		Date:         "2024-03-01",
		CheckInTime:  "08:45",
		CheckOutTime: &checkOut,
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01", resp.Date)
	assert.Equal(t, "present", resp.Status)
	assert.Equal(t, 8.25, resp.WorkHours)
	assert.Equal(t, "Alice Tan", resp.EmployeeName)
}

func TestCreateAttendance_Duplicate(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.System())
	alice := fx.employeeRepo.employees[0]

	req := attendance.CreateAttendanceRequest{
		EmployeeID:  alice.ID,
		Date:        "2024-03-01",
		CheckInTime: "09:00",
	}

	_, err := svc.CreateAttendance(fx.hrCtx(t), req)
	require.NoError(t, err)

	_, err = svc.CreateAttendance(fx.hrCtx(t), req)
	assert.ErrorIs(t, err, attendance.ErrDuplicateRecord)
}

func TestCreateAttendance_RequiresHR(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.System())
	alice := fx.employeeRepo.employees[0]

	_, err := svc.CreateAttendance(fx.aliceCtx(t), attendance.CreateAttendanceRequest{
		EmployeeID:  alice.ID,
		Date:        "2024-03-01",
		CheckInTime: "09:00",
	})
	assert.ErrorIs(t, err, authz.ErrAccessDenied)
}

func TestCreateAttendance_UnknownEmployee(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.System())

	_, err := svc.CreateAttendance(fx.hrCtx(t), attendance.CreateAttendanceRequest{
		EmployeeID:  uuid.NewString(),
		Date:        "2024-03-01",
		CheckInTime: "09:00",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateAttendance_RecomputesHours(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.System())
	alice := fx.employeeRepo.employees[0]

	created, err := svc.CreateAttendance(fx.hrCtx(t), attendance.CreateAttendanceRequest{
		EmployeeID:  alice.ID,
		Date:        "2024-03-01",
		CheckInTime: "09:00",
	})
	require.NoError(t, err)

	checkOut := "17:30:00"
	override := 1.0
	resp, err := svc.UpdateAttendance(fx.hrCtx(t), attendance.UpdateAttendanceRequest{
		ID:           created.ID,
		CheckOutTime: &checkOut,
		WorkHours:    &override,
	})
	require.NoError(t, err)

	// Both bounds present, so the recomputed value wins over the override
	assert.Equal(t, 8.5, resp.WorkHours)
	require.NotNil(t, resp.CheckOutTime)
	assert.Equal(t, "2024-03-01 17:30:00", *resp.CheckOutTime)
}

func TestUpdateAttendance_StatusAndFullDatetime(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.System())
	alice := fx.employeeRepo.employees[0]

	created, err := svc.CreateAttendance(fx.hrCtx(t), attendance.CreateAttendanceRequest{
		EmployeeID:  alice.ID,
		Date:        "2024-03-01",
		CheckInTime: "09:30",
	})
	require.NoError(t, err)

	status := "present"
	checkIn := "2024-03-01 08:50:00"
	resp, err := svc.UpdateAttendance(fx.hrCtx(t), attendance.UpdateAttendanceRequest{
		ID:          created.ID,
		Status:      &status,
		CheckInTime: &checkIn,
	})
	require.NoError(t, err)

	assert.Equal(t, "present", resp.Status)
	require.NotNil(t, resp.CheckInTime)
	assert.Equal(t, "2024-03-01 08:50:00", *resp.CheckInTime)
}

func TestUpdateAttendance_CheckOutWithoutCheckIn(t *testing.T) {
	fx := newFixture()
	alice := fx.employeeRepo.employees[0]

	// Seed a record with no timestamps at all
	seeded, err := fx.attendanceRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: alice.ID,
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusAbsent,
	})
	require.NoError(t, err)

	svc := fx.service(clock.System())
	checkOut := "17:00:00"
	_, err = svc.UpdateAttendance(fx.hrCtx(t), attendance.UpdateAttendanceRequest{
		ID:           seeded.ID,
		CheckOutTime: &checkOut,
	})
	assert.ErrorIs(t, err, attendance.ErrCheckOutWithoutCheckIn)
}

func TestUpdateAttendance_WorkHoursOverride(t *testing.T) {
	fx := newFixture()
	alice := fx.employeeRepo.employees[0]

	seeded, err := fx.attendanceRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: alice.ID,
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusAbsent,
	})
	require.NoError(t, err)

	svc := fx.service(clock.System())
	override := 4.5
	resp, err := svc.UpdateAttendance(fx.hrCtx(t), attendance.UpdateAttendanceRequest{
		ID:        seeded.ID,
		WorkHours: &override,
	})
	require.NoError(t, err)
	assert.Equal(t, 4.5, resp.WorkHours)
}

func TestUpdateAttendance_NotFound(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.System())

	_, err := svc.UpdateAttendance(fx.hrCtx(t), attendance.UpdateAttendanceRequest{ID: uuid.NewString()})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestDeleteAttendance(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.System())
	alice := fx.employeeRepo.employees[0]

	created, err := svc.CreateAttendance(fx.hrCtx(t), attendance.CreateAttendanceRequest{
		EmployeeID:  alice.ID,
		Date:        "2024-03-01",
		CheckInTime: "09:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAttendance(fx.hrCtx(t), created.ID))

	err = svc.DeleteAttendance(fx.hrCtx(t), created.ID)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

	_, err = svc.GetAttendance(fx.hrCtx(t), created.ID)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestGetAttendance_RequiresHR(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.System())

	_, err := svc.GetAttendance(fx.aliceCtx(t), uuid.NewString())
	assert.ErrorIs(t, err, authz.ErrAccessDenied)
}

func TestListForEmployee_SelfByEitherIdentifier(t *testing.T) {
	fx := newFixture()
	ctx := fx.aliceCtx(t)
	alice := fx.employeeRepo.employees[0]

	_, err := fx.service(clock.Fixed(time.Date(2024, 3, 4, 8, 30, 0, 0, time.UTC))).CheckIn(ctx)
	require.NoError(t, err)

	svc := fx.service(clock.System())

	byEmployeeID, err := svc.ListForEmployee(ctx, alice.ID, attendance.ListFilter{})
	require.NoError(t, err)
	byUserID, err := svc.ListForEmployee(ctx, *alice.UserID, attendance.ListFilter{})
	require.NoError(t, err)

	require.Len(t, byEmployeeID.Attendances, 1)
	assert.Equal(t, byEmployeeID.TotalCount, byUserID.TotalCount)
	assert.Equal(t, byEmployeeID.Attendances[0].ID, byUserID.Attendances[0].ID)
}

func TestListForEmployee_OtherEmployeeDenied(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.System())
	bob := fx.employeeRepo.employees[1]

	_, err := svc.ListForEmployee(fx.aliceCtx(t), bob.ID, attendance.ListFilter{})
	assert.ErrorIs(t, err, authz.ErrAccessDenied)
}

func TestListForEmployee_HRCanViewAnyone(t *testing.T) {
	fx := newFixture()
	ctx := fx.aliceCtx(t)
	alice := fx.employeeRepo.employees[0]

	_, err := fx.service(clock.Fixed(time.Date(2024, 3, 4, 9, 45, 0, 0, time.UTC))).CheckIn(ctx)
	require.NoError(t, err)

	svc := fx.service(clock.System())
	resp, err := svc.ListForEmployee(fx.hrCtx(t), alice.ID, attendance.ListFilter{})
	require.NoError(t, err)
	require.Len(t, resp.Attendances, 1)
	assert.Equal(t, "late", resp.Attendances[0].Status)
}

func TestListAttendance_RequiresHR(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.System())

	_, err := svc.ListAttendance(fx.aliceCtx(t), attendance.ListFilter{})
	assert.ErrorIs(t, err, authz.ErrAccessDenied)
}

func TestListAttendance_StatusFilterAndPagination(t *testing.T) {
	fx := newFixture()
	ctx := fx.aliceCtx(t)

	_, err := fx.service(clock.Fixed(time.Date(2024, 3, 4, 8, 30, 0, 0, time.UTC))).CheckIn(ctx)
	require.NoError(t, err)
	_, err = fx.service(clock.Fixed(time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC))).CheckIn(ctx)
	require.NoError(t, err)

	svc := fx.service(clock.System())
	status := "late"
	resp, err := svc.ListAttendance(fx.hrCtx(t), attendance.ListFilter{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, 1, resp.TotalPages)
	require.Len(t, resp.Attendances, 1)
	assert.Equal(t, "2024-03-05", resp.Attendances[0].Date)
}

func createRecord(t *testing.T, fx *fixture, svc attendance.AttendanceService, employeeID, date string) {
	t.Helper()
	_, err := svc.CreateAttendance(fx.hrCtx(t), attendance.CreateAttendanceRequest{
		EmployeeID:  employeeID,
		Date:        date,
		CheckInTime: "09:00",
	})
	require.NoError(t, err)
}

func TestListAttendance_MonthRangeInclusive(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.System())
	alice := fx.employeeRepo.employees[0]
	bob := fx.employeeRepo.employees[1]

	createRecord(t, fx, svc, alice.ID, "2024-02-29")
	createRecord(t, fx, svc, bob.ID, "2024-03-01")
	createRecord(t, fx, svc, alice.ID, "2024-03-31")
	createRecord(t, fx, svc, bob.ID, "2024-04-01")

	month, year := 3, 2024
	resp, err := svc.ListAttendance(fx.hrCtx(t), attendance.ListFilter{Month: &month, Year: &year})
	require.NoError(t, err)

	// First and last day of the month are both in; neighbors are out
	assert.Equal(t, int64(2), resp.TotalCount)
	require.Len(t, resp.Attendances, 2)
	assert.Equal(t, "2024-03-31", resp.Attendances[0].Date)
	assert.Equal(t, "2024-03-01", resp.Attendances[1].Date)
}

func TestListAttendance_SingleDay(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.System())
	alice := fx.employeeRepo.employees[0]
	bob := fx.employeeRepo.employees[1]

	createRecord(t, fx, svc, alice.ID, "2024-03-01")
	createRecord(t, fx, svc, bob.ID, "2024-03-02")

	date := "2024-03-01"
	resp, err := svc.ListAttendance(fx.hrCtx(t), attendance.ListFilter{Date: &date})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.TotalCount)
	require.Len(t, resp.Attendances, 1)
	assert.Equal(t, "2024-03-01", resp.Attendances[0].Date)
}

func TestListAttendance_NewestFirstPaged(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.System())
	alice := fx.employeeRepo.employees[0]

	createRecord(t, fx, svc, alice.ID, "2024-03-01")
	createRecord(t, fx, svc, alice.ID, "2024-03-03")
	createRecord(t, fx, svc, alice.ID, "2024-03-02")

	first, err := svc.ListAttendance(fx.hrCtx(t), attendance.ListFilter{Page: 1, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(3), first.TotalCount)
	assert.Equal(t, 2, first.TotalPages)
	require.Len(t, first.Attendances, 2)
	assert.Equal(t, "2024-03-03", first.Attendances[0].Date)
	assert.Equal(t, "2024-03-02", first.Attendances[1].Date)

	second, err := svc.ListAttendance(fx.hrCtx(t), attendance.ListFilter{Page: 2, Limit: 2})
	require.NoError(t, err)

	require.Len(t, second.Attendances, 1)
	assert.Equal(t, "2024-03-01", second.Attendances[0].Date)
}

func TestListAttendance_InvalidFilter(t *testing.T) {
	fx := newFixture()
	svc := fx.service(clock.System())

	month := 3
	_, err := svc.ListAttendance(fx.hrCtx(t), attendance.ListFilter{Month: &month})
	assert.Error(t, err)
}
