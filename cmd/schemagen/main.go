package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dangerclosesec/schemagen/ddl/migration"
	ddl "github.com/dangerclosesec/schemagen/ddl/model"
	"github.com/dangerclosesec/schemagen/ddl/parser"
	"github.com/dangerclosesec/schemagen/internal/config"
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.buildVersion=..."
var buildVersion = "dev"

var (
	dbConnString string
	verbose      bool
	cfg          *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (defaults to DB_* environment)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of records to show")
	pruneCmd.Flags().IntVar(&pruneKeep, "keep", 1000, "Number of newest records to keep")
	historyCmd.AddCommand(pruneCmd)

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

var rootCmd = &cobra.Command{
	Use:   "schemagen",
	Short: "Schemagen is a CLI tool for CREATE TABLE schemas",
	Long:  `Schemagen parses CREATE TABLE scripts and keeps a versioned catalog of the relations they declare.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()

		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		if dbConnString == "" {
			dbConnString = cfg.DSN()
		}
	},
}

// parseFileOrExit parses filePath, printing the syntax error location on failure.
func parseFileOrExit(filePath string) *ddl.Schema {
	schema, err := parser.ParseFile(filePath)
	if err == nil {
		return schema
	}

	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		fmt.Println("Parsing error:")
		fmt.Printf("  %s:%d:%d: %s\n", filePath, syntaxErr.Line, syntaxErr.Column, syntaxErr.Error())
		os.Exit(1)
	}

	log.Fatalf("Failed to parse file: %v", err)
	return nil
}

func openMigrator() *migration.Migrator {
	migrator, err := migration.Open(dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return migrator
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a CREATE TABLE script",
	Long:  `Parse a CREATE TABLE script and display the relations it declares.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filePath := args[0]
		schema := parseFileOrExit(filePath)

		fmt.Printf("Successfully parsed %s\n", filePath)
		fmt.Printf("Found %d relations\n", len(schema.Relations))

		if verbose {
			for _, relation := range schema.Relations {
				fmt.Printf("\nRelation: %s\n", relation.Name)
				fmt.Printf("  Columns (%d):\n", len(relation.Columns))
				for _, column := range relation.Columns {
					fmt.Printf("    - %s\n", column.Name)
				}
			}
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the catalog tables",
	Long:  `Initialize the database tables that hold the schema catalog.`,
	Run: func(cmd *cobra.Command, args []string) {
		migrator := openMigrator()
		defer migrator.Close()

		if err := migrator.InitializeSchema(cmd.Context()); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}

		fmt.Println("Schema initialized successfully")
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate [file]",
	Short: "Apply a CREATE TABLE script to the catalog",
	Long:  `Parse a CREATE TABLE script and record it as the next catalog version.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filePath := args[0]
		schema := parseFileOrExit(filePath)
		ctx := cmd.Context()

		migrator := openMigrator()
		defer migrator.Close()

		// Initialize schema if needed
		if err := migrator.InitializeSchema(ctx); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}

		description := fmt.Sprintf("Migration from %s at %s",
			filepath.Base(filePath), time.Now().Format(time.RFC3339))

		diff, err := migrator.ApplyMigration(ctx, schema, description)
		if err != nil {
			log.Fatalf("Failed to apply migration: %v", err)
		}

		if diff == migration.NoChanges {
			fmt.Println(diff)
			return
		}

		fmt.Println("Migration applied successfully")

		if verbose {
			fmt.Println("\nChanges:")
			fmt.Println(diff)
		}

		version, err := migrator.GetCurrentVersion(ctx)
		if err != nil {
			log.Fatalf("Failed to get current version: %v", err)
		}

		fmt.Printf("Current version: %d\n", version)
	},
}

var diffCmd = &cobra.Command{
	Use:   "diff [file]",
	Short: "Show differences between a script and the catalog",
	Long:  `Parse a CREATE TABLE script and show differences compared to the current catalog.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		schema := parseFileOrExit(args[0])

		migrator := openMigrator()
		defer migrator.Close()

		current, err := migrator.LoadCurrentSchema(cmd.Context())
		if err != nil {
			if errors.Is(err, migration.ErrNotInitialized) {
				log.Fatal("Catalog is not initialized, run `schemagen init` first")
			}
			log.Fatalf("Failed to load current schema: %v", err)
		}

		fmt.Print(migration.GenerateDiff(current, schema).String())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the current catalog version",
	Long:  `Show the current catalog version in the database.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		migrator := openMigrator()
		defer migrator.Close()

		version, err := migrator.GetCurrentVersion(ctx)
		if err != nil {
			log.Fatalf("Failed to get current version: %v", err)
		}

		fmt.Printf("schemagen %s\n", buildVersion)
		fmt.Printf("Current catalog version: %d\n", version)

		if verbose {
			versions, err := migrator.History(ctx)
			if err != nil {
				log.Fatalf("Failed to get version history: %v", err)
			}

			fmt.Println("\nVersion history:")
			fmt.Println("----------------")

			for _, v := range versions {
				fmt.Printf("Version %d (applied %s)\n", v.Version, v.AppliedAt.Time.Format(time.RFC3339))
				fmt.Printf("  Source: %s\n", v.SourceFile)
				fmt.Printf("  Description: %s\n\n", v.Description)
			}
		}
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
