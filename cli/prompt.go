package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// The dataset covers 1998 through 2020; interactive prompts hold input to
// that range.
const (
	minYear = 1998
	maxYear = 2020
)

var stdin = bufio.NewReader(os.Stdin)

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptYear asks until it gets a year in [minYear, maxYear]. Malformed or
// out-of-range input is reported and re-prompted, never fatal.
func promptYear(prompt string) (int, error) {
	for {
		line, err := promptLine(prompt)
		if err != nil {
			return 0, err
		}
		year, err := strconv.Atoi(line)
		if err != nil {
			fmt.Println("Invalid input. Please enter a valid year (e.g., 2000).")
			continue
		}
		if year < minYear || year > maxYear {
			fmt.Printf("Year out of range. Please enter a year between %d and %d.\n", minYear, maxYear)
			continue
		}
		return year, nil
	}
}

// promptYearRange asks for a start and end year until both are in range and
// ordered.
func promptYearRange() (int, int, error) {
	for {
		start, err := promptYear(fmt.Sprintf("Enter the start year (%d-%d): ", minYear, maxYear))
		if err != nil {
			return 0, 0, err
		}
		end, err := promptYear(fmt.Sprintf("Enter the end year (%d-%d): ", minYear, maxYear))
		if err != nil {
			return 0, 0, err
		}
		if start > end {
			fmt.Println("Invalid range. The start year must not be after the end year.")
			continue
		}
		return start, end, nil
	}
}
