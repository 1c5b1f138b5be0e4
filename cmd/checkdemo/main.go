package main

// Run the date validation pipeline against a resume text file:
//   go run ./cmd/checkdemo -in resume.txt
// With no -in flag the resume text is read from stdin.

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"datecheck-backend/internal/settings"
	"datecheck-backend/internal/shared/telemetry"
	"datecheck-backend/internal/validation"
)

func main() {
	inPath := flag.String("in", "", "path to a resume text file (defaults to stdin)")
	flag.Parse()

	text, err := readInput(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	sink := telemetry.NopSink{}
	settingsSvc := settings.NewService(settings.NewMemoryRepo(), sink)
	svc := validation.NewService(settingsSvc, validation.NewMemoryRepo(), sink)

	result := svc.ValidateResumeDates(context.Background(), text)

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(payload))

	if !result.IsValid {
		os.Exit(2)
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
