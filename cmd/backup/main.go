package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"collegepath/internal/config"
	"collegepath/internal/database"
	"collegepath/internal/service"
)

// Offline backup tool. Export writes a full JSON dump of the database;
// import restores one, replacing rows that share IDs.
//
//	backup export -file backup.json
//	backup import -file backup.json
func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportFile := exportCmd.String("file", "collegepath-backup.json", "output file path")

	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importFile := importCmd.String("file", "", "backup file to restore")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	backupService := service.NewBackupService(db)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		if err := backupService.Export(*exportFile); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		log.Printf("Backup written to %s", *exportFile)
	case "import":
		importCmd.Parse(os.Args[2:])
		if *importFile == "" {
			log.Fatal("import requires -file")
		}
		if err := backupService.Import(*importFile); err != nil {
			log.Fatalf("Import failed: %v", err)
		}
		log.Printf("Backup restored from %s", *importFile)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: backup <export|import> [-file path]")
}
