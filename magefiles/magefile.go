//go:build mage

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build tidies deps, then compiles both binaries into ./bin.
func Build() error {
	mg.Deps(Tidy)
	fmt.Println(">> Building console and backend binaries...")
	if err := sh.Run("go", "build", "-o", "bin/employee-console", "./cmd/server"); err != nil {
		return err
	}
	return sh.Run("go", "build", "-o", "bin/employee-backend", "./cmd/backend")
}

// Run builds then starts the backend in the background and the console in
// the foreground.
func Run() error {
	mg.Deps(Build)
	return runPair("./bin/employee-backend", "./bin/employee-console")
}

// Dev starts the development backend and the console via go run.
// Ctrl-C stops both.
func Dev() error {
	fmt.Println(">> Dev mode: go run ./cmd/backend + ./cmd/server ...")
	return runPair("go run ./cmd/backend", "go run ./cmd/server")
}

// Backend runs only the development REST backend.
func Backend() error {
	return sh.RunV("go", "run", "./cmd/backend")
}

func runPair(backendCmd, consoleCmd string) error {
	backend := command(backendCmd)
	if err := backend.Start(); err != nil {
		return fmt.Errorf("start backend: %w", err)
	}

	console := command(consoleCmd)
	if err := console.Start(); err != nil {
		backend.Process.Kill()
		return fmt.Errorf("start console: %w", err)
	}

	// Wait for Ctrl-C then cleanly stop both processes.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n>> Shutting down...")
	console.Process.Kill()
	backend.Process.Kill()
	return nil
}

func command(line string) *exec.Cmd {
	args := strings.Fields(line)
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	return cmd
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println(">> go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Test runs all unit tests.
func Test() error {
	fmt.Println(">> Running tests...")
	return sh.Run("go", "test", "./...")
}

// Lint runs golangci-lint if available.
func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println(">> golangci-lint not found; skipping.")
		return nil
	}
	return sh.Run("golangci-lint", "run", "./...")
}

// Clean removes build artifacts and the local SQLite DB.
func Clean() error {
	fmt.Println(">> Cleaning...")
	os.RemoveAll("bin")
	if err := os.Remove(dbPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Install builds and installs both binaries to $GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	if err := sh.Run("go", "install", "./cmd/server"); err != nil {
		return err
	}
	return sh.Run("go", "install", "./cmd/backend")
}

func dbPath() string {
	if p := os.Getenv("DB_PATH"); p != "" {
		return p
	}
	return "employees.db"
}

func init() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
}
