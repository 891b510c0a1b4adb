package main

import (
	"log"
	"os"
	"strings"
)

// Regenerates ref.txt, the fixture whose digest the file hashing tests
// assert. The content is fixed; regenerating must be byte-identical.

const paragraph = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, " +
	"sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. " +
	"Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris " +
	"nisi ut aliquip ex ea commodo consequat. Duis aute irure dolor in " +
	"reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla " +
	"pariatur. Excepteur sint occaecat cupidatat non proident, sunt in " +
	"culpa qui officia deserunt mollit anim id est laborum.\n"

func main() {
	content := strings.Repeat(paragraph, 12)

	if err := os.WriteFile("ref.txt", []byte(content), 0644); err != nil {
		log.Fatal(err)
	}

	log.Printf("wrote ref.txt, %d bytes\n", len(content))
}
