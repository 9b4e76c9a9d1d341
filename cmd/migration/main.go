package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"gitlab.com/webkontor/contactbook/internal/config"
	"gitlab.com/webkontor/contactbook/internal/fixtures"
	"gitlab.com/webkontor/contactbook/internal/model"
	"gitlab.com/webkontor/contactbook/internal/store"
)

// Usage example on the command line:
// > DBHOST=localhost DBUSER=webkontor DBPWD=bullo92 go run main.go -file=../../scripts/database.sql \
//     -admin-email=admin@example.com -admin-password=wintermute
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("could not load configuration", err)
		panic(err)
	}
	sqlDB := store.CreateDatabase(cfg)
	db := sqlx.NewDb(sqlDB, "mysql")
	defer db.Close()

	filePtr := flag.String("file", "database.sql", "the sql file to execute")
	adminEmail := flag.String("admin-email", "", "seed an administrator account with this email")
	adminPassword := flag.String("admin-password", "", "password for the seeded administrator account")
	userEmail := flag.String("user-email", "", "seed a regular user account with this email")
	userPassword := flag.String("user-password", "", "password for the seeded user account")
	flag.Parse()

	readFile, err := os.Open(*filePtr) // nosemgrep
	if err != nil {
		panic(err)
	}
	defer readFile.Close()

	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)
	builder := strings.Builder{}
	for fileScanner.Scan() {
		line := fileScanner.Text()
		builder.WriteString(line)
		builder.WriteString(" ")
		if strings.Contains(line, ";") {
			sql := builder.String()
			db.MustExec(sql)
			builder = strings.Builder{}
		}
	}

	// Statements must be prepared after the schema exists.
	store.SetupDatabaseWrapper(sqlDB)
	seedUser(cfg, model.RoleAdministrator, *adminEmail, *adminPassword)
	seedUser(cfg, model.RoleUser, *userEmail, *userPassword)
}

// seedUser stores an account with the given role and credentials. It does
// nothing when the email is left blank.
func seedUser(cfg *config.Config, role string, email string, password string) {
	if email == "" {
		return
	}
	if password == "" {
		fmt.Println("no password given for", email)
		panic("refusing to seed an account without a password")
	}
	user := fixtures.User(role, func(u *model.User) {
		u.Email = email
	})
	if err := user.SetPassword(password, cfg.BcryptCost); err != nil {
		panic(err)
	}
	if err := store.CreateUser(&user); err != nil {
		panic(err)
	}
	fmt.Println("seeded", role, "account", email)
}
