// Command import loads members from a CSV export of an older system.
//
//	go run ./cmd/import -file members.csv
//
// Expected columns: first_name,last_name,email,phone,dni,expiration_date,plan
// with dates as YYYY-MM-DD. Rows that fail are logged and skipped.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gym-frontdesk/config"
	"gym-frontdesk/database"
	"gym-frontdesk/internal/domain/plans"
	"gym-frontdesk/internal/logger"
	"gym-frontdesk/internal/membership"
)

func main() {
	file := flag.String("file", "", "CSV file to import")
	flag.Parse()
	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: import -file members.csv")
		os.Exit(2)
	}

	config.LoadEnv()
	logger.Init(config.APP_ENV)

	f, err := os.Open(*file)
	if err != nil {
		logger.Fatal("cannot open file", "file", *file, "error", err)
	}
	defer f.Close()

	rows, bad, err := readRows(f)
	if err != nil {
		logger.Fatal("cannot read CSV", "file", *file, "error", err)
	}
	for _, e := range bad {
		logger.Warn("[import][skip] unreadable row", "line", e.line, "error", e.err)
	}

	db, err := database.Open(config.DB_DRIVER, config.DB_URL)
	if err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	svc := membership.NewService(membership.NewRepository(db),
		membership.WithLocation(config.APP_LOCATION),
		membership.WithImportResolver(plans.ByNameThenKeyword(config.IMPORT_DEFAULT_PLAN_KEYWORD)),
	)

	sum := importRows(context.Background(), svc, rows)
	sum.skipped += len(bad)

	fmt.Printf("imported %d clients (%d with membership), skipped %d rows\n",
		sum.created, sum.withMembership, sum.skipped)
}

type summary struct {
	created        int
	withMembership int
	skipped        int
}

func importRows(ctx context.Context, svc *membership.Service, rows []memberRow) summary {
	var sum summary
	for _, row := range rows {
		var opts *membership.ImportOptions
		if row.expires != nil {
			opts = &membership.ImportOptions{ExpirationDate: row.expires, PlanName: row.plan}
		}

		created, err := svc.CreateClient(ctx, row.fields, opts)
		if err != nil {
			logger.Warn("[import][skip] row rejected", "line", row.line, "error", err)
			sum.skipped++
			continue
		}
		sum.created++
		if created.LastExpirationDate != nil {
			sum.withMembership++
		}
	}
	return sum
}
