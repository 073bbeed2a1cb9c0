package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/attendancerepo"
	"laundry/internal/adapters/out/postgres/notificationrepo"
	"laundry/internal/adapters/out/postgres/staffrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NotificationRepositoryIntegrationTestSuite verifies audience fan-out
// against a real PostgreSQL container.
type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *notificationrepo.GormNotificationRepository
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&notificationrepo.NotificationDTO{},
		&notificationrepo.RecipientDTO{},
		&staffrepo.StaffMemberDTO{},
		&attendancerepo.AttendanceDTO{},
	))
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE notifications, notification_recipients, staff_members, attendances").Error)

	suite.repository = notificationrepo.NewGormNotificationRepository(suite.db)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *NotificationRepositoryIntegrationTestSuite) newNotification(audience notification.Audience) *notification.Notification {
	n, err := notification.NewNotification(kernel.NewUUID(), "Title", "Body", audience, time.Now())
	suite.Require().NoError(err)
	return n
}

func (suite *NotificationRepositoryIntegrationTestSuite) seedStaff(role staff.Role, outletID kernel.UUID, station *order.Station, checkedIn bool) kernel.UUID {
	userID := kernel.NewUUID()
	rawOutlet := outletID.Bytes()

	var rawStation *int
	if station != nil {
		s := int(*station)
		rawStation = &s
	}

	suite.Require().NoError(suite.db.Create(&staffrepo.StaffMemberDTO{
		UserID:   userID.Bytes(),
		Role:     int(role),
		OutletID: &rawOutlet,
		Station:  rawStation,
	}).Error)

	if checkedIn {
		suite.Require().NoError(suite.db.Create(&attendancerepo.AttendanceDTO{
			ID:      kernel.NewUUID().Bytes(),
			UserID:  userID.Bytes(),
			CheckIn: time.Now().Add(-time.Hour),
		}).Error)
	}

	return userID
}

func (suite *NotificationRepositoryIntegrationTestSuite) recipients(n *notification.Notification) []notificationrepo.RecipientDTO {
	var rows []notificationrepo.RecipientDTO
	suite.Require().NoError(suite.db.Find(&rows, "notification_id = ?", n.ID().Bytes()).Error)
	return rows
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_CustomerAudience_CreatesUnreadRecipient() {
	customerID := kernel.NewUUID()
	n := suite.newNotification(notification.CustomerAudience{CustomerID: customerID})

	suite.Require().NoError(suite.repository.Add(context.Background(), n))

	rows := suite.recipients(n)
	suite.Require().Len(rows, 1)
	suite.Equal(customerID.Bytes(), rows[0].UserID)
	suite.False(rows[0].IsRead)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_WorkersAudience_ResolvesCheckedInStationWorkers() {
	outletID := kernel.NewUUID()
	ironing := order.StationIroning
	washing := order.StationWashing

	onDuty := suite.seedStaff(staff.RoleWorker, outletID, &ironing, true)
	suite.seedStaff(staff.RoleWorker, outletID, &ironing, false)
	suite.seedStaff(staff.RoleWorker, outletID, &washing, true)
	suite.seedStaff(staff.RoleWorker, kernel.NewUUID(), &ironing, true)
	suite.seedStaff(staff.RoleDriver, outletID, nil, true)

	n := suite.newNotification(notification.WorkersAudience{OutletID: outletID, Station: order.StationIroning})
	suite.Require().NoError(suite.repository.Add(context.Background(), n))

	rows := suite.recipients(n)
	suite.Require().Len(rows, 1)
	suite.Equal(onDuty.Bytes(), rows[0].UserID)
	suite.False(rows[0].IsRead)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_DriversAudience_SkipsCheckedOutDrivers() {
	outletID := kernel.NewUUID()

	onDuty := suite.seedStaff(staff.RoleDriver, outletID, nil, true)
	offDuty := suite.seedStaff(staff.RoleDriver, outletID, nil, true)
	suite.Require().NoError(suite.db.Exec(
		"UPDATE attendances SET check_out = ? WHERE user_id = ?", time.Now(), offDuty.Bytes()).Error)

	n := suite.newNotification(notification.DriversAudience{OutletID: outletID})
	suite.Require().NoError(suite.repository.Add(context.Background(), n))

	rows := suite.recipients(n)
	suite.Require().Len(rows, 1)
	suite.Equal(onDuty.Bytes(), rows[0].UserID)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_AdminsAudience_IgnoresAttendance() {
	outletID := kernel.NewUUID()
	admin := suite.seedStaff(staff.RoleAdmin, outletID, nil, false)

	n := suite.newNotification(notification.AdminsAudience{OutletID: outletID})
	suite.Require().NoError(suite.repository.Add(context.Background(), n))

	rows := suite.recipients(n)
	suite.Require().Len(rows, 1)
	suite.Equal(admin.Bytes(), rows[0].UserID)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_AdminsAudience_NoAdmins_Fails() {
	n := suite.newNotification(notification.AdminsAudience{OutletID: kernel.NewUUID()})

	err := suite.repository.Add(context.Background(), n)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrNoAdminsForOutlet)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_WorkersAudience_ZeroRecipientsSucceeds() {
	n := suite.newNotification(notification.WorkersAudience{OutletID: kernel.NewUUID(), Station: order.StationWashing})

	suite.Require().NoError(suite.repository.Add(context.Background(), n))
	suite.Empty(suite.recipients(n))
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
