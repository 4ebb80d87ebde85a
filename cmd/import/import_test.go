package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"gym-frontdesk/database"
	"gym-frontdesk/internal/domain/access"
	"gym-frontdesk/internal/domain/subscriptions"
	"gym-frontdesk/internal/membership"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sample = `first_name,last_name,email,phone,dni,expiration_date,plan
Ana,Gomez,ana@example.com,600000001,111A,2024-04-10,Anual VIP
Luis,Perez,,,,,
,Sin Nombre,,,,2024-04-10,
Rosa,Vega,,,222B,10/04/2024,Mensual General
`

func TestReadRows(t *testing.T) {
	rows, bad, err := readRows(strings.NewReader(sample))
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "Ana", rows[0].fields.FirstName)
	assert.Equal(t, "111A", rows[0].fields.DNI)
	require.NotNil(t, rows[0].expires)
	assert.Equal(t, "2024-04-10", access.FormatDate(*rows[0].expires))
	assert.Equal(t, "Anual VIP", rows[0].plan)
	assert.Nil(t, rows[1].expires)
	assert.Equal(t, 4, rows[2].line)

	require.Len(t, bad, 1)
	assert.Equal(t, 5, bad[0].line)
}

func TestReadRowsNeedsNameColumns(t *testing.T) {
	_, _, err := readRows(strings.NewReader("email,phone\na@b.c,1\n"))
	assert.ErrorContains(t, err, "first_name")
}

func TestImportRows(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))
	_, err = database.SeedPlans(db)
	require.NoError(t, err)

	svc := membership.NewService(membership.NewRepository(db),
		membership.WithClock(func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }),
		membership.WithLocation(time.UTC),
	)

	rows, _, err := readRows(strings.NewReader(sample))
	require.NoError(t, err)

	sum := importRows(context.Background(), svc, rows)

	assert.Equal(t, summary{created: 2, withMembership: 1, skipped: 1}, sum)

	var sub subscriptions.Subscription
	require.NoError(t, db.Preload("Plan").First(&sub).Error)
	assert.Equal(t, "Anual VIP", sub.Plan.Name)
	assert.Equal(t, subscriptions.PaymentImported, sub.PaymentStatus)
}
