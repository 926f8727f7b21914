package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/schooldb/cliparse"
	"github.com/danielhkuo/schooldb/db"
	"github.com/danielhkuo/schooldb/store"
)

func main() {
	if err := cliparse.LoadEnvFile(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("load failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliparse.Config) error {
	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		return err
	}

	conn, err := db.Open(dialect, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Verify connection
	if err := conn.PingContext(ctx); err != nil {
		return err
	}
	slog.Info("Connected", "type", dialect)

	if cfg.Reset {
		if err := db.DropSchema(conn); err != nil {
			return err
		}
		slog.Info("Dropped existing tables")
	}

	// Create schema (tables)
	if err := db.CreateSchema(conn, dialect); err != nil {
		return err
	}
	slog.Info("Database schema ready")

	if !cfg.SkipSeed {
		if _, err := db.Seed(ctx, conn, dialect); err != nil {
			return err
		}
	}

	s := store.New(conn, dialect)

	counts, err := s.Counts(ctx)
	if err != nil {
		return err
	}
	slog.Info("Table counts",
		"students", counts.Students,
		"teachers", counts.Teachers,
		"courses", counts.Courses,
		"course_assignments", counts.CourseAssignments,
		"enrollments", counts.Enrollments,
	)

	if cfg.Describe {
		tables, err := s.DescribeSchema(ctx)
		if err != nil {
			return err
		}
		for _, table := range tables {
			for _, col := range table.Columns {
				slog.Info("column",
					"table", table.Name,
					"name", col.Name,
					"type", col.Type,
					"not_null", col.NotNull,
					"primary_key", col.PrimaryKey,
				)
			}
		}
	}

	if cfg.ReportCourse != "" {
		top, err := s.TopPerformers(ctx, cfg.ReportCourse, cfg.ReportLimit)
		if err != nil {
			return err
		}
		if len(top) == 0 {
			slog.Info("No ranked students", "course", cfg.ReportCourse)
		}
		for i, p := range top {
			slog.Info("performer",
				"rank", i+1,
				"name", p.FirstName+" "+p.LastName,
				"course", p.CourseName,
				"score", p.Score,
			)
		}
	}

	return nil
}
