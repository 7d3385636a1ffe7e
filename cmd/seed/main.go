package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"glucomate/database"
	"glucomate/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numUsers := seedCmd.Int("users", utils.DefaultNumUsers, "Number of test users to create")

	deleteCmd := flag.NewFlagSet("delete", flag.ExitOnError)

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])
		runSeed(*numUsers)
	case "delete":
		deleteCmd.Parse(os.Args[2:])
		runDelete()
	case "stats":
		runStats()
	case "help":
		printHelp()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func runSeed(numUsers int) {
	database.ConnectDatabase()
	database.MigrateDatabase()

	log.Printf("Seeding %d test users...", numUsers)
	if err := utils.SeedDemoUsers(database.DB, numUsers); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

func runDelete() {
	database.ConnectDatabase()

	if err := utils.DeleteDemoUsers(database.DB); err != nil {
		log.Fatalf("Deletion failed: %v", err)
	}
}

func runStats() {
	database.ConnectDatabase()

	count, err := utils.GetUserCount(database.DB)
	if err != nil {
		log.Fatalf("Failed to count users: %v", err)
	}
	fmt.Printf("Total users: %d\n", count)
}

func printHelp() {
	fmt.Println("Database seeding tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  seed   [--users N]   Create N test users with assessments and meals")
	fmt.Println("  delete               Remove all test users and their data")
	fmt.Println("  stats                Show the current user count")
	fmt.Println("  help                 Show this help")
}
