// Command hash-password prints the bcrypt hash for the admin password, for
// use as ADMIN_PASSWORD_HASH.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Sanchit24s/payslip-backend/utils"
)

func main() {
	password := flag.String("password", "", "Required: plaintext password to hash")
	flag.Parse()

	if strings.TrimSpace(*password) == "" {
		fmt.Fprintln(os.Stderr, "--password is required")
		os.Exit(1)
	}

	hash, err := utils.HashPassword(*password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}
